package pricing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/cart"
	"github.com/25nandu/Citimart-web-app/internal/catalog"
	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/25nandu/Citimart-web-app/internal/offer"
	"github.com/google/uuid"
)

// Consumer-side views of the stores the engine prices against.
type CartSource interface {
	Get(ctx context.Context, customerID string) (*domain.Cart, error)
	// ClearVersion deletes the cart only if it still carries the given
	// updated_at, reporting whether a delete happened.
	ClearVersion(ctx context.Context, customerID string, version time.Time) (bool, error)
}

type CatalogSource interface {
	GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
}

type OfferSource interface {
	FindByCode(ctx context.Context, code string) (*domain.Offer, error)
}

type Ledger interface {
	CreateOrder(ctx context.Context, order *domain.Order, cartVersion time.Time) error
}

type CheckoutRequest struct {
	CustomerID    string
	CouponCode    string
	Address       string
	Phone         string
	PaymentMethod string
}

type CheckoutResult struct {
	OrderID         uuid.UUID
	TotalAmount     float64
	DiscountApplied float64
	DeliveryFee     float64
	FinalAmount     float64
	AppliedOffer    string
	// Warnings carries anything the customer should see that did not fail the
	// checkout: dropped lines, ignored coupons, an uncleared cart.
	Warnings []string
}

// Engine prices a checkout: consolidates cart lines against live catalog
// prices, applies at most one qualifying offer, computes the delivery fee and
// writes the immutable order. It is the only writer of order records.
type Engine struct {
	carts   CartSource
	catalog CatalogSource
	offers  OfferSource
	ledger  Ledger
	now     func() time.Time
}

func NewEngine(carts CartSource, catalogSrc CatalogSource, offers OfferSource, ledger Ledger) *Engine {
	return &Engine{
		carts:   carts,
		catalog: catalogSrc,
		offers:  offers,
		ledger:  ledger,
		now:     time.Now,
	}
}

func (e *Engine) PriceCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	loaded, err := e.carts.Get(ctx, req.CustomerID)
	if errors.Is(err, cart.ErrCartNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, mapDependencyErr(err)
	}
	if len(loaded.Items) == 0 {
		return nil, ErrEmptyCart
	}
	cartVersion := loaded.UpdatedAt

	lines, warnings, err := e.resolveLines(ctx, loaded.Items)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal float64
	for _, line := range lines {
		subtotal += line.product.Price * float64(line.item.Quantity)
	}

	discount, freeShipping, appliedOffer, offerWarnings, err := e.applyOffer(ctx, req.CouponCode, lines, subtotal)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, offerWarnings...)

	fee := deliveryFee(subtotal, discount, freeShipping)
	final := subtotal - discount + fee

	now := e.now()
	ord := &domain.Order{
		ID:              uuid.New(),
		CustomerID:      req.CustomerID,
		Items:           orderItems(lines),
		TotalAmount:     subtotal,
		DiscountApplied: discount,
		DeliveryFee:     fee,
		FinalAmount:     final,
		AppliedOffer:    appliedOffer,
		Address:         req.Address,
		Phone:           req.Phone,
		PaymentMethod:   req.PaymentMethod,
		Status:          domain.OrderStatusPlaced,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Persist first. The cart survives a failed write, so there is never an
	// emptied cart without a recorded order. The priced cart version rides in
	// the outbox payload so the consumer's clear is conditioned on it too.
	if err := e.ledger.CreateOrder(ctx, ord, cartVersion); err != nil {
		return nil, mapDependencyErr(fmt.Errorf("persist order: %w", err))
	}

	// Clear only the cart version we priced. A cart mutated mid-checkout is
	// left alone and the outbox consumer never fires a blind clear either; the
	// caller learns about it from the warning.
	cleared, clearErr := e.carts.ClearVersion(ctx, req.CustomerID, cartVersion)
	if clearErr != nil {
		log.Printf("failed to clear cart for customer %s after order %s: %v", req.CustomerID, ord.ID, clearErr)
		warnings = append(warnings, "order placed but cart could not be cleared")
	} else if !cleared {
		warnings = append(warnings, "cart changed during checkout and was left as-is")
	}

	return &CheckoutResult{
		OrderID:         ord.ID,
		TotalAmount:     subtotal,
		DiscountApplied: discount,
		DeliveryFee:     fee,
		FinalAmount:     final,
		AppliedOffer:    appliedOffer,
		Warnings:        warnings,
	}, nil
}

// resolveLines consolidates duplicate (product, size) entries and joins them
// with live catalog products in a single multi-get. Lines whose product has
// vanished are dropped with a warning, not an error.
func (e *Engine) resolveLines(ctx context.Context, items []domain.CartItem) ([]pricedLine, []string, error) {
	consolidated := consolidate(items)

	ids := make([]string, 0, len(consolidated))
	seen := make(map[string]struct{}, len(consolidated))
	for _, item := range consolidated {
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	products, err := e.catalog.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, mapDependencyErr(err)
	}

	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var lines []pricedLine
	var warnings []string
	for _, item := range consolidated {
		p, ok := byID[item.ProductID]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("product %s is no longer available and was removed from the order", item.ProductID))
			continue
		}
		lines = append(lines, pricedLine{item: item, product: p})
	}

	return lines, warnings, nil
}

func (e *Engine) applyOffer(ctx context.Context, code string, lines []pricedLine, subtotal float64) (float64, bool, string, []string, error) {
	if code == "" {
		return 0, false, "", nil, nil
	}

	found, err := e.offers.FindByCode(ctx, code)
	if errors.Is(err, offer.ErrOfferNotFound) {
		// Invalid codes price as zero discount, but visibly so.
		return 0, false, "", []string{fmt.Sprintf("coupon %q was not recognized", code)}, nil
	}
	if err != nil {
		return 0, false, "", nil, mapDependencyErr(err)
	}

	if offer.DeriveStatus(found, e.now()) != domain.OfferStatusActive {
		return 0, false, "", []string{fmt.Sprintf("coupon %q is not currently active", code)}, nil
	}
	if !qualifies(found, lines, subtotal) {
		return 0, false, "", []string{fmt.Sprintf("coupon %q does not apply to this cart", code)}, nil
	}

	discount, freeShipping := computeDiscount(found, lines, subtotal)
	if discount > subtotal {
		discount = subtotal
	}
	return discount, freeShipping, found.Title, nil, nil
}

// consolidate merges duplicate (product, size) entries into one
// quantity-summed line, preserving first-seen order.
func consolidate(items []domain.CartItem) []domain.CartItem {
	type key struct{ productID, size string }

	index := make(map[key]int, len(items))
	var out []domain.CartItem
	for _, item := range items {
		k := key{item.ProductID, item.Size}
		if i, ok := index[k]; ok {
			out[i].Quantity += item.Quantity
			continue
		}
		index[k] = len(out)
		out = append(out, item)
	}
	return out
}

func orderItems(lines []pricedLine) []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := domain.OrderItem{
			ProductID: line.product.ID,
			Name:      line.product.Name,
			Image:     line.product.FirstImage(),
			Size:      line.item.Size,
			Quantity:  line.item.Quantity,
			Price:     line.product.Price,
			AddedBy:   line.product.AddedBy,
		}
		if line.product.AddedBy == domain.AddedByVendor {
			item.VendorID = line.product.VendorID
		}
		items = append(items, item)
	}
	return items
}

func mapDependencyErr(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrDependencyTimeout, err)
	case errors.Is(err, catalog.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	return err
}
