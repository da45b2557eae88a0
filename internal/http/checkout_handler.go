package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/pricing"
)

type CheckoutService interface {
	PriceCheckout(ctx context.Context, req pricing.CheckoutRequest) (*pricing.CheckoutResult, error)
}

type CheckoutHandler struct {
	pricer  CheckoutService
	timeout time.Duration
}

func NewCheckoutHandler(pricer CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{pricer: pricer, timeout: timeout}
}

type CheckoutRequestDTO struct {
	CouponCode    string `json:"coupon_code,omitempty"`
	Address       string `json:"address"`
	Phone         string `json:"phone,omitempty"`
	PaymentMethod string `json:"payment_method"`
}

type CheckoutResponseDTO struct {
	OrderID         string   `json:"order_id"`
	TotalAmount     float64  `json:"total_amount"`
	DiscountApplied float64  `json:"discount_applied"`
	DeliveryFee     float64  `json:"delivery_fee"`
	FinalAmount     float64  `json:"final_amount"`
	AppliedOffer    string   `json:"applied_offer,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "cod"
	}

	result, err := h.pricer.PriceCheckout(ctx, pricing.CheckoutRequest{
		CustomerID:    customerID,
		CouponCode:    req.CouponCode,
		Address:       req.Address,
		Phone:         req.Phone,
		PaymentMethod: req.PaymentMethod,
	})

	// Distinguish "fix your input" from "try again later".
	switch {
	case errors.Is(err, pricing.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
		return
	case errors.Is(err, pricing.ErrDependencyTimeout):
		respondError(w, http.StatusGatewayTimeout, "timeout", "a dependency timed out, please retry")
		return
	case errors.Is(err, pricing.ErrDependencyUnavailable):
		respondError(w, http.StatusServiceUnavailable, "service_unavailable", "a dependency is unavailable, please retry")
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, "internal_error", "checkout failed")
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID:         result.OrderID.String(),
		TotalAmount:     result.TotalAmount,
		DiscountApplied: result.DiscountApplied,
		DeliveryFee:     result.DeliveryFee,
		FinalAmount:     result.FinalAmount,
		AppliedOffer:    result.AppliedOffer,
		Warnings:        result.Warnings,
	})
}
