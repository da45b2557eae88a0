package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "Placed"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// OrderItem is a snapshot of one cart line at checkout time. Prices are the
// catalog prices that were live when the order was priced, never client input.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Size      string  `json:"size,omitempty"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	AddedBy   string  `json:"added_by"`
	VendorID  string  `json:"vendor_id,omitempty"`
}

// Order is immutable once written: the pricing path never updates it.
// Invariant: FinalAmount == TotalAmount - DiscountApplied + DeliveryFee.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	CustomerID      string      `json:"customer_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	DiscountApplied float64     `json:"discount_applied"`
	DeliveryFee     float64     `json:"delivery_fee"`
	FinalAmount     float64     `json:"final_amount"`
	AppliedOffer    string      `json:"applied_offer,omitempty"` // offer title, empty when no offer qualified
	Address         string      `json:"address"`
	Phone           string      `json:"phone,omitempty"`
	PaymentMethod   string      `json:"payment_method"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}
