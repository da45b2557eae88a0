package domain

import "time"

type Cart struct {
	ID         string     `bson:"_id,omitempty"`
	CustomerID string     `bson:"customer_id"`
	Items      []CartItem `bson:"items"`
	CreatedAt  time.Time  `bson:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at"`
}

// CartItem is one line of a cart. Lines are keyed by (product_id, size):
// the same product in two sizes is two separate lines.
type CartItem struct {
	ProductID string    `bson:"product_id"`
	Size      string    `bson:"size,omitempty"`
	Quantity  int       `bson:"quantity"`
	AddedAt   time.Time `bson:"added_at"`
}

// SameLine reports whether two items belong to the same cart line.
func (i CartItem) SameLine(productID, size string) bool {
	return i.ProductID == productID && i.Size == size
}
