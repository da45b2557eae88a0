package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/catalog"
	"github.com/25nandu/Citimart-web-app/internal/recommend"
	"github.com/go-chi/chi/v5"
)

type Recommender interface {
	BoughtTogether(ctx context.Context, seedIDs []string, maxResults int) ([]recommend.Suggestion, error)
	SuggestionsFor(ctx context.Context, productID string, maxResults int) ([]recommend.Suggestion, error)
}

type RecommendHandler struct {
	engine  Recommender
	timeout time.Duration
}

func NewRecommendHandler(engine Recommender, timeout time.Duration) *RecommendHandler {
	return &RecommendHandler{engine: engine, timeout: timeout}
}

type RecommendRequestDTO struct {
	ProductIDs []string `json:"product_ids"`
	MaxResults int      `json:"max_results,omitempty"`
}

type SuggestionsResponseDTO struct {
	Suggestions []recommend.Suggestion `json:"suggestions"`
}

// BoughtTogether never fails the page: engine errors degrade to an empty
// suggestion list.
func (h *RecommendHandler) BoughtTogether(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req RecommendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	suggestions, err := h.engine.BoughtTogether(ctx, req.ProductIDs, req.MaxResults)
	if err != nil {
		log.Printf("bought-together recommendation failed: %v", err)
		suggestions = nil
	}
	if suggestions == nil {
		suggestions = []recommend.Suggestion{}
	}

	respondJSON(w, http.StatusOK, SuggestionsResponseDTO{Suggestions: suggestions})
}

func (h *RecommendHandler) ProductSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	productID := chi.URLParam(r, "product_id")

	suggestions, err := h.engine.SuggestionsFor(ctx, productID, recommend.DefaultMaxResults)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		log.Printf("product suggestions failed: %v", err)
		suggestions = nil
	}
	if suggestions == nil {
		suggestions = []recommend.Suggestion{}
	}

	respondJSON(w, http.StatusOK, SuggestionsResponseDTO{Suggestions: suggestions})
}
