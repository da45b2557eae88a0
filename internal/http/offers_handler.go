package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/25nandu/Citimart-web-app/internal/offer"
	"github.com/go-chi/chi/v5"
)

type OfferStore interface {
	ListActive(ctx context.Context, now time.Time) ([]*domain.Offer, error)
	Create(ctx context.Context, o *domain.Offer) (string, error)
	Update(ctx context.Context, o *domain.Offer) error
	Delete(ctx context.Context, id string) error
}

type OffersHandler struct {
	offers  OfferStore
	timeout time.Duration
}

func NewOffersHandler(offers OfferStore, timeout time.Duration) *OffersHandler {
	return &OffersHandler{offers: offers, timeout: timeout}
}

type OfferDTO struct {
	ID              string    `json:"id,omitempty"`
	Code            string    `json:"code"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount,omitempty"`
	DiscountPercent float64   `json:"discount_percent,omitempty"`
	FlatPrice       float64   `json:"flat_price,omitempty"`
	MinPurchase     float64   `json:"min_purchase"`
	Category        string    `json:"category,omitempty"`
	Products        []string  `json:"products,omitempty"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status,omitempty"`
}

func offerToDTO(o *domain.Offer) OfferDTO {
	return OfferDTO{
		ID:              o.ID,
		Code:            o.Code,
		Title:           o.Title,
		Description:     o.Description,
		Type:            string(o.Type),
		Amount:          o.Amount,
		DiscountPercent: o.DiscountPercent,
		FlatPrice:       o.FlatPrice,
		MinPurchase:     o.MinPurchase,
		Category:        o.Category,
		Products:        o.ProductIDs,
		StartDate:       o.StartDate,
		EndDate:         o.EndDate,
		Status:          string(o.Status),
	}
}

func (d OfferDTO) toDomain() *domain.Offer {
	return &domain.Offer{
		ID:              d.ID,
		Code:            d.Code,
		Title:           d.Title,
		Description:     d.Description,
		Type:            domain.OfferType(d.Type),
		Amount:          d.Amount,
		DiscountPercent: d.DiscountPercent,
		FlatPrice:       d.FlatPrice,
		MinPurchase:     d.MinPurchase,
		Category:        d.Category,
		ProductIDs:      d.Products,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
	}
}

var validOfferTypes = map[domain.OfferType]bool{
	domain.OfferFlat:         true,
	domain.OfferPercent:      true,
	domain.OfferBogo:         true,
	domain.OfferFreeShipping: true,
	domain.OfferFlatPrice:    true,
}

func (h *OffersHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	offers, err := h.offers.ListActive(ctx, time.Now())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list offers")
		return
	}

	out := make([]OfferDTO, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerToDTO(o))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *OffersHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	dto, ok := h.decode(w, r)
	if !ok {
		return
	}

	o := dto.toDomain()
	id, err := h.offers.Create(ctx, o)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to create offer")
		return
	}
	o.ID = id

	respondJSON(w, http.StatusCreated, offerToDTO(o))
}

func (h *OffersHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	dto, ok := h.decode(w, r)
	if !ok {
		return
	}
	dto.ID = chi.URLParam(r, "offer_id")

	o := dto.toDomain()
	err := h.offers.Update(ctx, o)
	if errors.Is(err, offer.ErrOfferNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "offer not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to update offer")
		return
	}

	respondJSON(w, http.StatusOK, offerToDTO(o))
}

func (h *OffersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	err := h.offers.Delete(ctx, chi.URLParam(r, "offer_id"))
	if errors.Is(err, offer.ErrOfferNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "offer not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to delete offer")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "offer deleted"})
}

func (h *OffersHandler) decode(w http.ResponseWriter, r *http.Request) (OfferDTO, bool) {
	var dto OfferDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return dto, false
	}
	if !validOfferTypes[domain.OfferType(dto.Type)] {
		respondError(w, http.StatusBadRequest, "invalid_offer_type", "unknown offer type")
		return dto, false
	}
	if dto.Code == "" || dto.Title == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "code and title are required")
		return dto, false
	}
	if !dto.EndDate.After(dto.StartDate) {
		respondError(w, http.StatusBadRequest, "invalid_dates", "end_date must be after start_date")
		return dto, false
	}
	return dto, true
}
