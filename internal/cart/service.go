package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/cache"
	"github.com/25nandu/Citimart-web-app/internal/domain"
	"golang.org/x/sync/singleflight"
)

type Service struct {
	repo  Repository
	cache cache.CartCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewService(repo Repository, cache cache.CartCache) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
	}
}

// Get returns the customer's cart, an empty cart when none exists.
func (s *Service) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(customerID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, customerID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		cart, errGet := s.repo.Get(ctx, customerID)
		if errGet != nil && errors.Is(errGet, ErrCartNotFound) {
			return &domain.Cart{
				CustomerID: customerID,
				Items:      nil,
				CreatedAt:  time.Now(),
				UpdatedAt:  time.Now(),
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), customerID, cart)
			if errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return cart, nil // cart was not in cache, return it from repo
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *Service) UpsertLine(ctx context.Context, customerID string, item domain.CartItem) error {
	errAdd := s.repo.UpsertLine(ctx, customerID, item)
	if errAdd != nil {
		log.Printf("repo upsert line error: %v", errAdd)
		return errAdd
	}

	s.invalidateCache(customerID)
	return nil
}

func (s *Service) SetQuantity(ctx context.Context, customerID, productID, size string, quantity int) error {
	errUpdate := s.repo.SetQuantity(ctx, customerID, productID, size, quantity)
	if errUpdate != nil {
		return errUpdate
	}

	s.invalidateCache(customerID)
	return nil
}

func (s *Service) RemoveLine(ctx context.Context, customerID, productID, size string) error {
	errRemove := s.repo.RemoveLine(ctx, customerID, productID, size)
	if errRemove != nil {
		log.Printf("repo remove line error: %v", errRemove)
		return errRemove
	}

	s.invalidateCache(customerID)
	return nil
}

func (s *Service) Clear(ctx context.Context, customerID string) error {
	errDelete := s.repo.Clear(ctx, customerID)
	if errDelete != nil {
		log.Printf("repo clear cart error: %v", errDelete)
		return errDelete
	}

	s.invalidateCache(customerID)
	return nil
}

// ClearVersion deletes the cart only if it still carries the given updated_at.
// The cache entry is dropped either way: a skipped delete means the cart
// changed after the cached copy was taken, so the copy is stale regardless.
func (s *Service) ClearVersion(ctx context.Context, customerID string, version time.Time) (bool, error) {
	cleared, errDelete := s.repo.ClearVersion(ctx, customerID, version)
	if errDelete != nil {
		log.Printf("repo versioned clear error: %v", errDelete)
		return false, errDelete
	}

	s.invalidateCache(customerID)
	return cleared, nil
}

func (s *Service) invalidateCache(customerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	errInvalidate := s.cache.Delete(ctx, customerID)
	if errInvalidate != nil {
		log.Printf("cache invalidate error: %v", errInvalidate)
	}
}
