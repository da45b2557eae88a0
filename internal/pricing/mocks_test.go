package pricing

import (
	"context"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/cart"
	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/25nandu/Citimart-web-app/internal/offer"
)

// MockCartRepo implements CartSource for testing
type MockCartRepo struct {
	Cart   *domain.Cart
	GetErr error

	ClearVersionOK   bool
	ClearVersionErr  error
	ClearedCustomer  string
	ClearedAtVersion time.Time
	ClearVersionHits int
}

func (m *MockCartRepo) Get(_ context.Context, customerID string) (*domain.Cart, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Cart == nil {
		return nil, cart.ErrCartNotFound
	}
	return m.Cart, nil
}

func (m *MockCartRepo) ClearVersion(_ context.Context, customerID string, version time.Time) (bool, error) {
	m.ClearVersionHits++
	m.ClearedCustomer = customerID
	m.ClearedAtVersion = version
	if m.ClearVersionErr != nil {
		return false, m.ClearVersionErr
	}
	return m.ClearVersionOK, nil
}

// MockCatalog implements CatalogSource for testing
type MockCatalog struct {
	Products map[string]*domain.Product
	Err      error
}

func (m *MockCatalog) GetProductsByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []*domain.Product
	for _, id := range ids {
		if p, ok := m.Products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// MockOffers implements OfferSource for testing
type MockOffers struct {
	Offers map[string]*domain.Offer
	Err    error
}

func (m *MockOffers) FindByCode(_ context.Context, code string) (*domain.Offer, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	found, ok := m.Offers[code]
	if !ok {
		return nil, offer.ErrOfferNotFound
	}
	return found, nil
}

// MockLedger implements Ledger for testing
type MockLedger struct {
	CreatedOrder *domain.Order // captures the order passed to CreateOrder
	CartVersion  time.Time     // captures the cart version passed alongside it
	CreateErr    error
}

func (m *MockLedger) CreateOrder(_ context.Context, order *domain.Order, cartVersion time.Time) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.CreatedOrder = order
	m.CartVersion = cartVersion
	return nil
}
