package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/25nandu/Citimart-web-app/internal/order"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OrderStore interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
}

type OrdersHandler struct {
	orders  OrderStore
	timeout time.Duration
}

func NewOrdersHandler(orders OrderStore, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{orders: orders, timeout: timeout}
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	orders, err := h.orders.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list orders")
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id must be a UUID")
		return
	}

	ord, err := h.orders.GetOrderByID(ctx, id)
	if errors.Is(err, order.ErrOrderNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load order")
		return
	}

	// Orders are only visible to their owner.
	if ord.CustomerID != customerID {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}

	respondJSON(w, http.StatusOK, ord)
}
