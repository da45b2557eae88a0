package catalog

import (
	"context"
	"errors"

	"github.com/25nandu/Citimart-web-app/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUnavailable     = errors.New("catalog unavailable")
)

// ProductSource is the read-only view of the product catalog. The checkout
// core never writes products; vendor and admin CRUD live elsewhere.
type ProductSource interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	// GetProductsByIDs returns the products that exist, omitting unknown or
	// deleted ids. It never fails the whole batch over a missing id.
	GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	// ListBySubcategories returns active, in-stock products in any of the
	// given subcategories matching gender (or Unisex), best discount first.
	ListBySubcategories(ctx context.Context, subcategories []string, gender string) ([]*domain.Product, error)
}
