package wishlist

import (
	"context"

	"github.com/25nandu/Citimart-web-app/internal/cart"
	"github.com/25nandu/Citimart-web-app/internal/domain"
)

type Service struct {
	repo  Repository
	carts *cart.Service
}

func NewService(repo Repository, carts *cart.Service) *Service {
	return &Service{repo: repo, carts: carts}
}

func (s *Service) Get(ctx context.Context, customerID string) (*Wishlist, error) {
	return s.repo.Get(ctx, customerID)
}

func (s *Service) Add(ctx context.Context, customerID string, item Item) error {
	return s.repo.Add(ctx, customerID, item)
}

func (s *Service) Remove(ctx context.Context, customerID, productID, size string) error {
	return s.repo.Remove(ctx, customerID, productID, size)
}

// MoveToCart adds the wishlist entry to the cart, then drops it from the
// wishlist. The cart add happens first so a failure leaves the item saved.
func (s *Service) MoveToCart(ctx context.Context, customerID, productID, size string, quantity int) error {
	err := s.carts.UpsertLine(ctx, customerID, domain.CartItem{
		ProductID: productID,
		Size:      size,
		Quantity:  quantity,
	})
	if err != nil {
		return err
	}

	return s.repo.Remove(ctx, customerID, productID, size)
}
