package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/wishlist"
)

type WishlistService interface {
	Get(ctx context.Context, customerID string) (*wishlist.Wishlist, error)
	Add(ctx context.Context, customerID string, item wishlist.Item) error
	Remove(ctx context.Context, customerID, productID, size string) error
	MoveToCart(ctx context.Context, customerID, productID, size string, quantity int) error
}

type WishlistHandler struct {
	wishlists WishlistService
	timeout   time.Duration
}

func NewWishlistHandler(wishlists WishlistService, timeout time.Duration) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlists, timeout: timeout}
}

type WishlistItemDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity,omitempty"` // move-to-cart only
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	wl, err := h.wishlists.Get(ctx, customerID)
	if errors.Is(err, wishlist.ErrWishlistNotFound) {
		respondJSON(w, http.StatusOK, wishlist.Wishlist{CustomerID: customerID, Items: []wishlist.Item{}})
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load wishlist")
		return
	}

	respondJSON(w, http.StatusOK, wl)
}

func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	req, ok := decodeWishlistItem(w, r)
	if !ok {
		return
	}

	err := h.wishlists.Add(ctx, customerID, wishlist.Item{ProductID: req.ProductID, Size: req.Size})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to add to wishlist")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "added to wishlist"})
}

func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	req, ok := decodeWishlistItem(w, r)
	if !ok {
		return
	}

	if err := h.wishlists.Remove(ctx, customerID, req.ProductID, req.Size); err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to remove from wishlist")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "removed from wishlist"})
}

func (h *WishlistHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	customerID := requireCustomer(w, r)
	if customerID == "" {
		return
	}

	req, ok := decodeWishlistItem(w, r)
	if !ok {
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	err := h.wishlists.MoveToCart(ctx, customerID, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to move item to cart")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "moved to cart"})
}

func decodeWishlistItem(w http.ResponseWriter, r *http.Request) (WishlistItemDTO, bool) {
	var req WishlistItemDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return req, false
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return req, false
	}
	return req, true
}
