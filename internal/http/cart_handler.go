package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/cart"
	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/25nandu/Citimart-web-app/internal/pricing"
	"github.com/go-chi/chi/v5"
)

type CartService interface {
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	UpsertLine(ctx context.Context, customerID string, item domain.CartItem) error
	SetQuantity(ctx context.Context, customerID, productID, size string, quantity int) error
	RemoveLine(ctx context.Context, customerID, productID, size string) error
	Clear(ctx context.Context, customerID string) error
}

type CartHandler struct {
	carts   CartService
	catalog pricing.CatalogSource
	timeout time.Duration
}

func NewCartHandler(carts CartService, catalogSrc pricing.CatalogSource, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: catalogSrc,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Size     string `json:"size,omitempty"`
	Quantity int    `json:"quantity"`
}

type CartLineView struct {
	Product  ProductSummary `json:"product"`
	Size     string         `json:"size,omitempty"`
	Quantity int            `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
}

type ProductSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

type CartView struct {
	Items []CartLineView `json:"items"`
	Total float64        `json:"total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	loaded, err := h.carts.Get(ctx, customerID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart")
		return
	}

	view, err := h.enrich(ctx, loaded)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load cart products")
		return
	}

	respondJSON(w, http.StatusOK, view)
}

// enrich joins cart lines with live catalog products; lines whose product has
// disappeared are simply not shown.
func (h *CartHandler) enrich(ctx context.Context, loaded *domain.Cart) (*CartView, error) {
	view := &CartView{Items: []CartLineView{}}
	if len(loaded.Items) == 0 {
		return view, nil
	}

	ids := make([]string, 0, len(loaded.Items))
	for _, item := range loaded.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := h.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range loaded.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		subtotal := p.Price * float64(item.Quantity)
		view.Items = append(view.Items, CartLineView{
			Product: ProductSummary{
				ID:    p.ID,
				Name:  p.Name,
				Image: p.FirstImage(),
				Price: p.Price,
			},
			Size:     item.Size,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		view.Total += subtotal
	}
	return view, nil
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	err := h.carts.UpsertLine(ctx, customerID, domain.CartItem{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add item")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "added to cart"})
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	err := h.carts.SetQuantity(ctx, customerID, productID, req.Size, req.Quantity)
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
	case errors.Is(err, cart.ErrLineNotFound):
		respondError(w, http.StatusNotFound, "not_found", "item not found in cart")
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update quantity")
	default:
		respondJSON(w, http.StatusOK, map[string]string{"message": "quantity updated"})
	}
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	productID := chi.URLParam(r, "product_id")
	size := r.URL.Query().Get("size")

	if err := h.carts.RemoveLine(ctx, customerID, productID, size); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove item")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "item removed"})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	if err := h.carts.Clear(ctx, customerID); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to clear cart")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "cart cleared"})
}
