package poller

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/cache"
	"github.com/25nandu/Citimart-web-app/internal/cart"
	"github.com/segmentio/kafka-go"
)

// Poller consumes order.placed events and clears the customer's cart. This is
// the recovery side of the checkout transaction: the synchronous versioned
// clear can fail when the process died or Mongo hiccuped, and this path
// guarantees the cart is eventually cleaned up. The delete stays conditioned
// on the cart version that was priced, so a cart the customer kept mutating
// after checkout is never wiped here either. Redelivery is harmless.
type Poller struct {
	repo   cart.Repository
	reader *kafka.Reader
	cache  cache.CartCache
}

// orderPlacedEvent is the slice of the outbox payload this consumer cares about.
type orderPlacedEvent struct {
	CustomerID  string    `json:"customer_id"`
	CartVersion time.Time `json:"cart_version"`
}

func NewPoller(repo cart.Repository, cache cache.CartCache, brokers ...string) *Poller {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    "order-outbox",
		GroupID:  "cart-clear-consumer",
		MaxBytes: 10e6, // 10MB
	})
	return &Poller{repo, reader, cache}
}

func (p *Poller) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		p.consumeAndClearCart(ctx)
	}
}

func (p *Poller) Close() {
	err := p.reader.Close()
	if err != nil {
		fmt.Printf("error closing reader: %v\n", err)
	}
}

func (p *Poller) consumeAndClearCart(ctx context.Context) {
	m, err := p.reader.ReadMessage(ctx)
	if err != nil {
		fmt.Printf("error reading message: %v\n", err)
		return
	}

	p.handleOrderPlaced(ctx, m.Value)
}

func (p *Poller) handleOrderPlaced(ctx context.Context, value []byte) {
	var event orderPlacedEvent
	if errUnMarshal := json.Unmarshal(value, &event); errUnMarshal != nil {
		fmt.Printf("error parsing message: %v\n", errUnMarshal)
		return
	}
	if event.CustomerID == "" {
		fmt.Println("missing or invalid customer_id")
		return
	}

	if event.CartVersion.IsZero() {
		// An event without a version tells us nothing about which cart state
		// was priced, so deleting on it would wipe whatever is there now.
		fmt.Printf("event for customer %s has no cart version, leaving cart alone\n", event.CustomerID)
	} else {
		cleared, errDelete := p.repo.ClearVersion(ctx, event.CustomerID, event.CartVersion)
		if errDelete != nil {
			fmt.Printf("failed to clear cart: %v\n", errDelete)
		} else if !cleared {
			// Already cleared synchronously, or the customer kept shopping.
			fmt.Printf("cart for customer %s moved past version %s, leaving it alone\n",
				event.CustomerID, event.CartVersion.Format(time.RFC3339))
		}
	}

	errCacheDelete := p.cache.Delete(ctx, event.CustomerID)
	if errCacheDelete != nil {
		fmt.Printf("failed to delete cache: %v\n", errCacheDelete)
	}
}
