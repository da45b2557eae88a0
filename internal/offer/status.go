package offer

import (
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
)

// DeriveStatus computes an offer's lifecycle status from its validity window.
// The stored status field is only a cache of this function; every read path
// re-derives so nothing depends on the sweep having run.
//
// upcoming --(now >= StartDate)--> active --(now > EndDate)--> expired
func DeriveStatus(o *domain.Offer, now time.Time) domain.OfferStatus {
	if now.Before(o.StartDate) {
		return domain.OfferStatusUpcoming
	}
	if now.After(o.EndDate) {
		return domain.OfferStatusExpired
	}
	return domain.OfferStatusActive
}
