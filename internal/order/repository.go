package order

import (
	"context"
	"errors"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

// OutboxEvent is a pending integration event written in the same transaction
// as its order row.
type OutboxEvent struct {
	ID          int64
	AggregateID string // order id, used as the kafka message key
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}

type Ledger interface {
	// CreateOrder persists the order and an order.placed outbox event in one
	// transaction. Either both land or neither does. cartVersion is the cart's
	// updated_at read at pricing start; it rides along in the event payload so
	// downstream cart cleanup stays conditioned on the priced version.
	CreateOrder(ctx context.Context, order *domain.Order, cartVersion time.Time) error
	GetOrderByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error)
	GetUnprocessedEvents(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkEventAsProcessed(ctx context.Context, id int64) error
	RunMigrations(*Credentials) error
	Close() error
}
