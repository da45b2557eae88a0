package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/25nandu/Citimart-web-app/internal/catalog"
	"github.com/25nandu/Citimart-web-app/internal/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func activeWindow() (time.Time, time.Time) {
	return testNow.Add(-24 * time.Hour), testNow.Add(24 * time.Hour)
}

func newTestEngine(repo *MockCartRepo, cat *MockCatalog, offers *MockOffers, ledger *MockLedger) *Engine {
	e := NewEngine(repo, cat, offers, ledger)
	e.now = func() time.Time { return testNow }
	return e
}

func testCart(items ...domain.CartItem) *domain.Cart {
	return &domain.Cart{
		ID:         "cart-1",
		CustomerID: "cust-1",
		Items:      items,
		UpdatedAt:  testNow.Add(-time.Hour),
	}
}

func testProduct(id string, price float64) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     "product " + id,
		Price:    price,
		Stock:    10,
		Status:   domain.ProductStatusActive,
		Category: "Shirts",
		AddedBy:  domain.AddedByAdmin,
	}
}

func TestPriceCheckout_NoCoupon(t *testing.T) {
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 2}),
		ClearVersionOK: true,
	}
	ledger := &MockLedger{}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		ledger,
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err)
	assert.Equal(t, 600.0, res.TotalAmount)
	assert.Equal(t, 0.0, res.DiscountApplied)
	assert.Equal(t, 0.0, res.DeliveryFee) // at the free-delivery threshold
	assert.Equal(t, 600.0, res.FinalAmount)
	assert.Empty(t, res.Warnings)
	require.NotNil(t, ledger.CreatedOrder)
	assert.Equal(t, domain.OrderStatusPlaced, ledger.CreatedOrder.Status)
	assert.Equal(t, res.OrderID, ledger.CreatedOrder.ID)
}

func TestPriceCheckout_ConsolidatesDuplicateLines(t *testing.T) {
	repo := &MockCartRepo{
		Cart: testCart(
			domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1},
			domain.CartItem{ProductID: "p1", Size: "L", Quantity: 1},
			domain.CartItem{ProductID: "p1", Size: "M", Quantity: 2},
		),
		ClearVersionOK: true,
	}
	ledger := &MockLedger{}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 100)}},
		&MockOffers{},
		ledger,
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err)
	assert.Equal(t, 400.0, res.TotalAmount)
	require.Len(t, ledger.CreatedOrder.Items, 2) // (p1,M) merged, (p1,L) separate
	assert.Equal(t, 3, ledger.CreatedOrder.Items[0].Quantity)
	assert.Equal(t, "M", ledger.CreatedOrder.Items[0].Size)
	assert.Equal(t, 1, ledger.CreatedOrder.Items[1].Quantity)
}

func TestPriceCheckout_PercentOffer(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 2}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"SAVE10": {
				Code: "SAVE10", Title: "10% off", Type: domain.OfferPercent,
				DiscountPercent: 10, MinPurchase: 500,
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "SAVE10"})

	require.NoError(t, err)
	assert.Equal(t, 60.0, res.DiscountApplied)
	assert.Equal(t, 0.0, res.DeliveryFee)
	assert.Equal(t, 540.0, res.FinalAmount)
	assert.Equal(t, "10% off", res.AppliedOffer)
	assert.Empty(t, res.Warnings)
}

func TestPriceCheckout_PercentTruncates(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 333)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"SAVE10": {
				Code: "SAVE10", Title: "10% off", Type: domain.OfferPercent,
				DiscountPercent: 10,
				StartDate:       start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "SAVE10"})

	require.NoError(t, err)
	assert.Equal(t, 33.0, res.DiscountApplied) // floor(33.3), never rounded up
}

func TestPriceCheckout_DeliveryFeeBelowThreshold(t *testing.T) {
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err)
	assert.Equal(t, 50.0, res.DeliveryFee)
	assert.Equal(t, 350.0, res.FinalAmount)
}

func TestPriceCheckout_DiscountCanReintroduceDeliveryFee(t *testing.T) {
	// 550 gross, flat 100 off brings the discounted subtotal to 450,
	// below the free-delivery threshold.
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 550)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"FLAT100": {
				Code: "FLAT100", Title: "100 off", Type: domain.OfferFlat, Amount: 100,
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "FLAT100"})

	require.NoError(t, err)
	assert.Equal(t, 100.0, res.DiscountApplied)
	assert.Equal(t, 50.0, res.DeliveryFee)
	assert.Equal(t, 500.0, res.FinalAmount)
}

func TestPriceCheckout_BogoPerLine(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart: testCart(
			domain.CartItem{ProductID: "p1", Size: "M", Quantity: 4},
			domain.CartItem{ProductID: "p2", Size: "L", Quantity: 3},
		),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{
			"p1": testProduct("p1", 100),
			"p2": testProduct("p2", 40),
		}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"BOGO": {
				Code: "BOGO", Title: "buy one get one", Type: domain.OfferBogo,
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "BOGO"})

	require.NoError(t, err)
	// floor(4/2)*100 + floor(3/2)*40, each line priced with its own product
	assert.Equal(t, 240.0, res.DiscountApplied)
	assert.Equal(t, 520.0, res.TotalAmount)
	assert.Equal(t, 50.0, res.DeliveryFee)
	assert.Equal(t, 330.0, res.FinalAmount)
}

func TestPriceCheckout_BogoDeliveryFee(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 4}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 100)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"BOGO": {
				Code: "BOGO", Title: "buy one get one", Type: domain.OfferBogo,
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "BOGO"})

	require.NoError(t, err)
	assert.Equal(t, 400.0, res.TotalAmount)
	assert.Equal(t, 200.0, res.DiscountApplied)
	assert.Equal(t, 50.0, res.DeliveryFee)
	assert.Equal(t, 250.0, res.FinalAmount)
}

func TestPriceCheckout_FreeShippingOffer(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 200)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"SHIPFREE": {
				Code: "SHIPFREE", Title: "free shipping", Type: domain.OfferFreeShipping,
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "SHIPFREE"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, res.DiscountApplied)
	assert.Equal(t, 0.0, res.DeliveryFee)
	assert.Equal(t, 200.0, res.FinalAmount)
}

func TestPriceCheckout_FlatPriceClampsPerLine(t *testing.T) {
	start, end := activeWindow()
	cheap := testProduct("p1", 80)
	pricey := testProduct("p2", 120)
	other := testProduct("p3", 100)
	other.Category = "Shoes"

	repo := &MockCartRepo{
		Cart: testCart(
			domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1},
			domain.CartItem{ProductID: "p2", Size: "M", Quantity: 2},
			domain.CartItem{ProductID: "p3", Size: "9", Quantity: 1},
		),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": cheap, "p2": pricey, "p3": other}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"SHIRTS100": {
				Code: "SHIRTS100", Title: "all shirts 100", Type: domain.OfferFlatPrice,
				FlatPrice: 100, Category: "Shirts",
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "SHIRTS100"})

	require.NoError(t, err)
	// p1 is below the flat price and never gets more expensive, p2 drops
	// 20 per unit, p3 is out of category.
	assert.Equal(t, 40.0, res.DiscountApplied)
}

func TestPriceCheckout_FlatDiscountClampedAtSubtotal(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 100)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"FLAT500": {
				Code: "FLAT500", Title: "500 off", Type: domain.OfferFlat, Amount: 500,
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "FLAT500"})

	require.NoError(t, err)
	assert.Equal(t, 100.0, res.DiscountApplied)
	assert.Equal(t, 50.0, res.FinalAmount) // delivery fee only
}

func TestPriceCheckout_MinPurchaseGatesEveryType(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"SHIPFREE": {
				Code: "SHIPFREE", Title: "free shipping", Type: domain.OfferFreeShipping,
				MinPurchase: 500,
				StartDate:   start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "SHIPFREE"})

	require.NoError(t, err)
	assert.Equal(t, 50.0, res.DeliveryFee)
	assert.Empty(t, res.AppliedOffer)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "does not apply")
}

func TestPriceCheckout_ProductAllowList(t *testing.T) {
	start, end := activeWindow()
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 2}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"OTHER": {
				Code: "OTHER", Title: "selected items", Type: domain.OfferPercent,
				DiscountPercent: 20, ProductIDs: []string{"p9"},
				StartDate: start, EndDate: end,
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "OTHER"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, res.DiscountApplied)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "does not apply")
}

func TestPriceCheckout_UnknownCouponIsWarning(t *testing.T) {
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 2}),
		ClearVersionOK: true,
	}
	ledger := &MockLedger{}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		ledger,
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "NOPE"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, res.DiscountApplied)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "not recognized")
	assert.NotNil(t, ledger.CreatedOrder) // the order still goes through
}

func TestPriceCheckout_ExpiredCouponIsWarning(t *testing.T) {
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 2}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{Offers: map[string]*domain.Offer{
			"OLD": {
				Code: "OLD", Title: "long gone", Type: domain.OfferFlat, Amount: 50,
				StartDate: testNow.Add(-48 * time.Hour), EndDate: testNow.Add(-24 * time.Hour),
				Status: domain.OfferStatusActive, // stale cached status must not be trusted
			},
		}},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1", CouponCode: "OLD"})

	require.NoError(t, err)
	assert.Equal(t, 0.0, res.DiscountApplied)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "not currently active")
}

func TestPriceCheckout_EmptyCart(t *testing.T) {
	ledger := &MockLedger{}
	engine := newTestEngine(&MockCartRepo{}, &MockCatalog{}, &MockOffers{}, ledger)

	_, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, ledger.CreatedOrder)
}

func TestPriceCheckout_VanishedProductDroppedWithWarning(t *testing.T) {
	repo := &MockCartRepo{
		Cart: testCart(
			domain.CartItem{ProductID: "p1", Size: "M", Quantity: 2},
			domain.CartItem{ProductID: "gone", Size: "M", Quantity: 1},
		),
		ClearVersionOK: true,
	}
	ledger := &MockLedger{}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		ledger,
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err)
	assert.Equal(t, 600.0, res.TotalAmount)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "gone")
	require.Len(t, ledger.CreatedOrder.Items, 1)
}

func TestPriceCheckout_AllProductsVanished(t *testing.T) {
	repo := &MockCartRepo{
		Cart: testCart(domain.CartItem{ProductID: "gone", Size: "M", Quantity: 1}),
	}
	ledger := &MockLedger{}
	engine := newTestEngine(repo, &MockCatalog{Products: map[string]*domain.Product{}}, &MockOffers{}, ledger)

	_, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, ledger.CreatedOrder)
}

func TestPriceCheckout_LedgerFailureKeepsCart(t *testing.T) {
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		&MockLedger{CreateErr: errors.New("connection refused")},
	)

	_, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.Error(t, err)
	assert.Equal(t, 0, repo.ClearVersionHits)
}

func TestPriceCheckout_ClearUsesPricedVersion(t *testing.T) {
	loaded := testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1})
	repo := &MockCartRepo{Cart: loaded, ClearVersionOK: true}
	ledger := &MockLedger{}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		ledger,
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, "cust-1", repo.ClearedCustomer)
	assert.Equal(t, loaded.UpdatedAt, repo.ClearedAtVersion)
	// the ledger gets the same version, so the outbox consumer's clear is
	// conditioned on exactly what was priced
	assert.Equal(t, loaded.UpdatedAt, ledger.CartVersion)
}

func TestPriceCheckout_ConcurrentCartChangeLeavesCart(t *testing.T) {
	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: false, // version moved underneath us
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "changed during checkout")
}

func TestPriceCheckout_ClearFailureIsWarning(t *testing.T) {
	repo := &MockCartRepo{
		Cart:            testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionErr: errors.New("mongo down"),
	}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": testProduct("p1", 300)}},
		&MockOffers{},
		&MockLedger{},
	)

	res, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err) // the order is placed either way
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "could not be cleared")
}

func TestPriceCheckout_CatalogUnavailable(t *testing.T) {
	repo := &MockCartRepo{
		Cart: testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
	}
	engine := newTestEngine(repo,
		&MockCatalog{Err: catalog.ErrUnavailable},
		&MockOffers{},
		&MockLedger{},
	)

	_, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	assert.ErrorIs(t, err, ErrDependencyUnavailable)
}

func TestPriceCheckout_CatalogTimeout(t *testing.T) {
	repo := &MockCartRepo{
		Cart: testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
	}
	engine := newTestEngine(repo,
		&MockCatalog{Err: context.DeadlineExceeded},
		&MockOffers{},
		&MockLedger{},
	)

	_, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	assert.ErrorIs(t, err, ErrDependencyTimeout)
}

func TestPriceCheckout_VendorAttribution(t *testing.T) {
	vendorProduct := testProduct("p1", 300)
	vendorProduct.AddedBy = domain.AddedByVendor
	vendorProduct.VendorID = "vendor-7"

	repo := &MockCartRepo{
		Cart:           testCart(domain.CartItem{ProductID: "p1", Size: "M", Quantity: 1}),
		ClearVersionOK: true,
	}
	ledger := &MockLedger{}
	engine := newTestEngine(repo,
		&MockCatalog{Products: map[string]*domain.Product{"p1": vendorProduct}},
		&MockOffers{},
		ledger,
	)

	_, err := engine.PriceCheckout(context.Background(), CheckoutRequest{CustomerID: "cust-1"})

	require.NoError(t, err)
	require.Len(t, ledger.CreatedOrder.Items, 1)
	assert.Equal(t, domain.AddedByVendor, ledger.CreatedOrder.Items[0].AddedBy)
	assert.Equal(t, "vendor-7", ledger.CreatedOrder.Items[0].VendorID)
}
