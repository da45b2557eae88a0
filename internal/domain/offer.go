package domain

import "time"

type OfferType string

const (
	OfferFlat         OfferType = "flat"
	OfferPercent      OfferType = "percent"
	OfferBogo         OfferType = "bogo"
	OfferFreeShipping OfferType = "free_shipping"
	OfferFlatPrice    OfferType = "flat_price"
)

type OfferStatus string

const (
	OfferStatusUpcoming OfferStatus = "upcoming"
	OfferStatusActive   OfferStatus = "active"
	OfferStatusExpired  OfferStatus = "expired"
)

// Offer is a promotional rule with a validity window. The Status field is a
// cache of a pure function of time (see offer.DeriveStatus); it is rewritten
// by the sweep and must never be trusted without re-deriving.
type Offer struct {
	ID              string      `bson:"_id,omitempty"`
	Code            string      `bson:"code"`
	Title           string      `bson:"title"`
	Description     string      `bson:"description,omitempty"`
	Type            OfferType   `bson:"type"`
	Amount          float64     `bson:"amount,omitempty"`           // flat
	DiscountPercent float64     `bson:"discount_percent,omitempty"` // percent
	FlatPrice       float64     `bson:"flat_price,omitempty"`       // flat_price
	MinPurchase     float64     `bson:"min_purchase"`
	Category        string      `bson:"category,omitempty"` // flat_price scope
	ProductIDs      []string    `bson:"products,omitempty"` // allow-list, empty = all
	StartDate       time.Time   `bson:"start_date"`
	EndDate         time.Time   `bson:"end_date"`
	Status          OfferStatus `bson:"status"`
	CreatedAt       time.Time   `bson:"created_at"`
}
