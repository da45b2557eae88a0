package domain

import "time"

const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"

	AddedByAdmin  = "admin"
	AddedByVendor = "vendor"
)

type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Discount    float64 // percent off, display only
	Stock       int
	Status      string
	Category    string
	Subcategory string
	Gender      string
	Brand       string
	Tags        []string
	PairsWith   []string // curated directed pairing edges; may contain dangling ids
	Images      []string
	AddedBy     string
	VendorID    string
	CreatedAt   time.Time
}

func (p *Product) Active() bool {
	return p.Status == ProductStatusActive
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
