package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		collection: db.Collection("carts"),
	}
}

func (m *MongoRepository) Get(ctx context.Context, customerID string) (*domain.Cart, error) {
	var cart domain.Cart

	filter := bson.M{"customer_id": customerID}
	err := m.collection.FindOne(ctx, filter).Decode(&cart)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	return &cart, nil
}

func (m *MongoRepository) UpsertLine(ctx context.Context, customerID string, item domain.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	now := time.Now()
	item.AddedAt = now

	cart, err := m.Get(ctx, customerID)
	if errors.Is(err, ErrCartNotFound) {
		cart = &domain.Cart{
			ID:         primitive.NewObjectID().Hex(),
			CustomerID: customerID,
			Items:      []domain.CartItem{item},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, insErr := m.collection.InsertOne(ctx, cart); insErr != nil {
			return fmt.Errorf("failed to create cart with line: %w", insErr)
		}
		return nil
	}
	if err != nil {
		return err
	}

	// Accumulate onto an existing line, or append a new one. The whole items
	// array is written back, same as every other mutation here.
	merged := false
	for i := range cart.Items {
		if cart.Items[i].SameLine(item.ProductID, item.Size) {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	return m.writeItems(ctx, customerID, cart.Items)
}

func (m *MongoRepository) SetQuantity(ctx context.Context, customerID, productID, size string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	cart, err := m.Get(ctx, customerID)
	if errors.Is(err, ErrCartNotFound) {
		return ErrLineNotFound
	}
	if err != nil {
		return err
	}

	for i := range cart.Items {
		if cart.Items[i].SameLine(productID, size) {
			cart.Items[i].Quantity = quantity
			return m.writeItems(ctx, customerID, cart.Items)
		}
	}
	return ErrLineNotFound
}

func (m *MongoRepository) RemoveLine(ctx context.Context, customerID, productID, size string) error {
	cart, err := m.Get(ctx, customerID)
	if errors.Is(err, ErrCartNotFound) {
		return nil // nothing to remove
	}
	if err != nil {
		return err
	}

	kept := cart.Items[:0:0]
	for _, item := range cart.Items {
		if !item.SameLine(productID, size) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart.Items) {
		return nil // line was already gone
	}

	return m.writeItems(ctx, customerID, kept)
}

func (m *MongoRepository) Clear(ctx context.Context, customerID string) error {
	filter := bson.M{"customer_id": customerID}

	if _, err := m.collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (m *MongoRepository) ClearVersion(ctx context.Context, customerID string, version time.Time) (bool, error) {
	filter := bson.M{"customer_id": customerID, "updated_at": version}

	result, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to clear cart: %w", err)
	}
	return result.DeletedCount > 0, nil
}

func (m *MongoRepository) writeItems(ctx context.Context, customerID string, items []domain.CartItem) error {
	filter := bson.M{"customer_id": customerID}
	update := bson.M{"$set": bson.M{
		"items":      items,
		"updated_at": time.Now(),
	}}

	if _, err := m.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update cart items: %w", err)
	}
	return nil
}

func (m *MongoRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "customer_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(90 * 24 * 60 * 60), // 90 days TTL
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
