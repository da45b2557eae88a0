package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// BreakerSource wraps a ProductSource in a circuit breaker so a sick catalog
// store fails checkout fast with ErrUnavailable instead of hanging every
// request. Not-found results count as success: they are answers, not faults.
type BreakerSource struct {
	inner ProductSource
	cb    *gobreaker.CircuitBreaker[[]*domain.Product]
}

func NewBreakerSource(inner ProductSource) *BreakerSource {
	settings := gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrProductNotFound)
		},
	}
	return &BreakerSource{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[[]*domain.Product](settings),
	}
}

func (b *BreakerSource) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	products, err := b.cb.Execute(func() ([]*domain.Product, error) {
		p, err := b.inner.GetProduct(ctx, id)
		if err != nil {
			return nil, err
		}
		return []*domain.Product{p}, nil
	})
	if err != nil {
		return nil, b.mapErr(err)
	}
	return products[0], nil
}

func (b *BreakerSource) GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	products, err := b.cb.Execute(func() ([]*domain.Product, error) {
		return b.inner.GetProductsByIDs(ctx, ids)
	})
	if err != nil {
		return nil, b.mapErr(err)
	}
	return products, nil
}

func (b *BreakerSource) ListBySubcategories(ctx context.Context, subcategories []string, gender string) ([]*domain.Product, error) {
	products, err := b.cb.Execute(func() ([]*domain.Product, error) {
		return b.inner.ListBySubcategories(ctx, subcategories, gender)
	})
	if err != nil {
		return nil, b.mapErr(err)
	}
	return products, nil
}

func (b *BreakerSource) mapErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}
