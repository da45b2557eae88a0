package pricing

import (
	"math"

	"github.com/25nandu/Citimart-web-app/internal/domain"
)

const (
	freeDeliveryThreshold = 500.0
	flatDeliveryFee       = 50.0
)

// pricedLine is a consolidated cart line joined with its live catalog product.
type pricedLine struct {
	item    domain.CartItem
	product *domain.Product
}

// qualifies reports whether the offer can apply to this cart at all. The
// min-purchase threshold gates every discount type, and a non-empty product
// allow-list requires at least one cart line from the list.
func qualifies(offer *domain.Offer, lines []pricedLine, subtotal float64) bool {
	if subtotal < offer.MinPurchase {
		return false
	}
	if len(offer.ProductIDs) == 0 {
		return true
	}
	allowed := make(map[string]struct{}, len(offer.ProductIDs))
	for _, id := range offer.ProductIDs {
		allowed[id] = struct{}{}
	}
	for _, line := range lines {
		if _, ok := allowed[line.product.ID]; ok {
			return true
		}
	}
	return false
}

// computeDiscount evaluates one offer against the priced lines. It returns
// the monetary discount and whether delivery should be free. Percent math
// truncates (floor, not round) so totals are reproducible; every per-line
// flat_price discount is clamped at zero so an offer never raises a price.
func computeDiscount(offer *domain.Offer, lines []pricedLine, subtotal float64) (float64, bool) {
	switch offer.Type {
	case domain.OfferFlat:
		return offer.Amount, false

	case domain.OfferPercent:
		return math.Floor(subtotal * offer.DiscountPercent / 100), false

	case domain.OfferBogo:
		var discount float64
		for _, line := range lines {
			freeUnits := line.item.Quantity / 2
			discount += float64(freeUnits) * line.product.Price
		}
		return discount, false

	case domain.OfferFreeShipping:
		return 0, true

	case domain.OfferFlatPrice:
		var discount float64
		for _, line := range lines {
			if line.product.Category != offer.Category {
				continue
			}
			perUnit := line.product.Price - offer.FlatPrice
			if perUnit < 0 {
				perUnit = 0
			}
			discount += perUnit * float64(line.item.Quantity)
		}
		return discount, false
	}

	return 0, false
}

// deliveryFee is 0 once the discounted subtotal reaches the threshold
// (boundary inclusive) or shipping is free, otherwise the flat rate.
func deliveryFee(subtotal, discount float64, freeShipping bool) float64 {
	if freeShipping || subtotal-discount >= freeDeliveryThreshold {
		return 0
	}
	return flatDeliveryFee
}
