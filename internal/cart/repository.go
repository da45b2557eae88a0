package cart

import (
	"context"
	"errors"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrLineNotFound    = errors.New("line not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Repository defines the interface for cart data operations
// Consumers define this interface, not the MongoDB implementation
type Repository interface {
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	// UpsertLine adds quantity to the (product, size) line, creating the cart
	// or the line as needed.
	UpsertLine(ctx context.Context, customerID string, item domain.CartItem) error
	// SetQuantity replaces the line's quantity. Fails with ErrInvalidQuantity
	// below 1 and ErrLineNotFound when the line does not exist.
	SetQuantity(ctx context.Context, customerID, productID, size string, quantity int) error
	// RemoveLine deletes the line. Removing an absent line succeeds silently.
	RemoveLine(ctx context.Context, customerID, productID, size string) error
	// Clear deletes the whole cart. Clearing an absent cart succeeds silently.
	Clear(ctx context.Context, customerID string) error
	// ClearVersion deletes the cart only if it has not been touched since
	// version (the UpdatedAt read at pricing start). Returns whether the cart
	// was actually deleted.
	ClearVersion(ctx context.Context, customerID string, version time.Time) (bool, error)
}
