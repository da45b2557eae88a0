package recommend

import (
	"context"
	"sort"
	"strings"

	"github.com/25nandu/Citimart-web-app/internal/catalog"
	"github.com/25nandu/Citimart-web-app/internal/domain"
)

const DefaultMaxResults = 8

// pairTable is the static subcategory fallback used when curated pairs_with
// edges run dry.
var pairTable = map[string][]string{
	"Shirts":   {"Jeans", "Belts", "Shoes", "Watches"},
	"T-Shirts": {"Sneakers", "Caps", "Shorts"},
	"Dresses":  {"Handbags", "Heels", "Jewelry"},
	"Tops":     {"Skirts", "Heels", "Bags"},
}

type Suggestion struct {
	ProductID       string  `json:"product_id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discount"`
	ImageURL        string  `json:"image"`
}

// Engine proposes complementary products: curated pairs_with edges first,
// the static subcategory table second, ranked by discount.
type Engine struct {
	catalog catalog.ProductSource
}

func NewEngine(catalogSrc catalog.ProductSource) *Engine {
	return &Engine{catalog: catalogSrc}
}

// BoughtTogether returns up to maxResults complementary products for the seed
// set. Seeds, inactive products and zero-stock products never appear in the
// output, even when a curated edge points at them.
func (e *Engine) BoughtTogether(ctx context.Context, seedIDs []string, maxResults int) ([]Suggestion, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	seeds, err := e.catalog.GetProductsByIDs(ctx, seedIDs)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, nil
	}

	seedSet := make(map[string]struct{}, len(seedIDs))
	for _, id := range seedIDs {
		seedSet[id] = struct{}{}
	}

	pool := newCandidatePool(seedSet)

	// Pass 1: curated pairing edges, filtered per the seed that owns the edge.
	for _, seed := range seeds {
		if len(seed.PairsWith) == 0 {
			continue
		}
		// Dangling or inactive edge targets are filtered here, never trusted.
		candidates, err := e.catalog.GetProductsByIDs(ctx, seed.PairsWith)
		if err != nil {
			return nil, err
		}
		for _, cand := range candidates {
			if matchesPairing(seed, cand) {
				pool.add(cand)
			}
		}
	}

	// Pass 2: static subcategory table when the curated pool runs short.
	if pool.size() < maxResults {
		for _, seed := range seeds {
			fallbackSubs, ok := pairTable[seed.Subcategory]
			if !ok {
				continue
			}
			candidates, err := e.catalog.ListBySubcategories(ctx, fallbackSubs, seed.Gender)
			if err != nil {
				return nil, err
			}
			for _, cand := range candidates {
				pool.add(cand)
			}
		}
	}

	return pool.ranked(maxResults), nil
}

// SuggestionsFor proposes complements for a single product page, using the
// static subcategory table directly.
func (e *Engine) SuggestionsFor(ctx context.Context, productID string, maxResults int) ([]Suggestion, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	seed, err := e.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !seed.Active() || !seed.InStock() {
		return nil, catalog.ErrProductNotFound
	}

	fallbackSubs, ok := pairTable[seed.Subcategory]
	if !ok {
		return nil, nil
	}

	candidates, err := e.catalog.ListBySubcategories(ctx, fallbackSubs, seed.Gender)
	if err != nil {
		return nil, err
	}

	pool := newCandidatePool(map[string]struct{}{seed.ID: {}})
	for _, cand := range candidates {
		pool.add(cand)
	}
	return pool.ranked(maxResults), nil
}

// matchesPairing applies the edge filter: the candidate must be sellable,
// pass the category gate (same category as the seed, or Accessories) and
// share at least one secondary attribute with the seed.
func matchesPairing(seed, cand *domain.Product) bool {
	if !cand.Active() || !cand.InStock() {
		return false
	}
	if cand.Category != seed.Category && cand.Category != "Accessories" {
		return false
	}
	return cand.Subcategory == seed.Subcategory ||
		strings.EqualFold(cand.Gender, seed.Gender) ||
		cand.HasTag(seed.Subcategory) ||
		cand.HasTag(seed.Gender)
}

// candidatePool deduplicates by product id and keeps seeds out.
type candidatePool struct {
	exclude map[string]struct{}
	seen    map[string]struct{}
	items   []*domain.Product
}

func newCandidatePool(exclude map[string]struct{}) *candidatePool {
	return &candidatePool{
		exclude: exclude,
		seen:    make(map[string]struct{}),
	}
}

func (p *candidatePool) add(cand *domain.Product) {
	if !cand.Active() || !cand.InStock() {
		return
	}
	if _, isSeed := p.exclude[cand.ID]; isSeed {
		return
	}
	if _, dup := p.seen[cand.ID]; dup {
		return
	}
	p.seen[cand.ID] = struct{}{}
	p.items = append(p.items, cand)
}

func (p *candidatePool) size() int {
	return len(p.items)
}

// ranked orders by descending discount, stable on insertion order, and
// truncates to max.
func (p *candidatePool) ranked(max int) []Suggestion {
	sort.SliceStable(p.items, func(i, j int) bool {
		return p.items[i].Discount > p.items[j].Discount
	})

	if len(p.items) > max {
		p.items = p.items[:max]
	}

	out := make([]Suggestion, 0, len(p.items))
	for _, cand := range p.items {
		out = append(out, Suggestion{
			ProductID:       cand.ID,
			Name:            cand.Name,
			Price:           cand.Price,
			DiscountPercent: cand.Discount,
			ImageURL:        cand.FirstImage(),
		})
	}
	return out
}
