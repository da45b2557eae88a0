package wishlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrWishlistNotFound = errors.New("wishlist not found")

type Item struct {
	ProductID string    `bson:"product_id" json:"product_id"`
	Size      string    `bson:"size,omitempty" json:"size,omitempty"`
	AddedAt   time.Time `bson:"added_at" json:"added_at"`
}

type Wishlist struct {
	ID         string    `bson:"_id,omitempty" json:"-"`
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	Items      []Item    `bson:"items" json:"items"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}

type Repository interface {
	Get(ctx context.Context, customerID string) (*Wishlist, error)
	// Add is a no-op when the (product, size) pair is already present.
	Add(ctx context.Context, customerID string, item Item) error
	// Remove is idempotent.
	Remove(ctx context.Context, customerID, productID, size string) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		collection: db.Collection("wishlists"),
	}
}

func (m *mongoRepository) Get(ctx context.Context, customerID string) (*Wishlist, error) {
	var wl Wishlist

	filter := bson.M{"customer_id": customerID}
	err := m.collection.FindOne(ctx, filter).Decode(&wl)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrWishlistNotFound
		}
		return nil, fmt.Errorf("failed to get wishlist: %w", err)
	}

	return &wl, nil
}

func (m *mongoRepository) Add(ctx context.Context, customerID string, item Item) error {
	now := time.Now()
	item.AddedAt = now

	wl, err := m.Get(ctx, customerID)
	if errors.Is(err, ErrWishlistNotFound) {
		wl = &Wishlist{
			ID:         primitive.NewObjectID().Hex(),
			CustomerID: customerID,
			Items:      []Item{item},
			UpdatedAt:  now,
		}
		if _, insErr := m.collection.InsertOne(ctx, wl); insErr != nil {
			return fmt.Errorf("failed to create wishlist: %w", insErr)
		}
		return nil
	}
	if err != nil {
		return err
	}

	for _, existing := range wl.Items {
		if existing.ProductID == item.ProductID && existing.Size == item.Size {
			return nil // already wishlisted
		}
	}
	wl.Items = append(wl.Items, item)

	return m.writeItems(ctx, customerID, wl.Items)
}

func (m *mongoRepository) Remove(ctx context.Context, customerID, productID, size string) error {
	wl, err := m.Get(ctx, customerID)
	if errors.Is(err, ErrWishlistNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	kept := wl.Items[:0:0]
	for _, item := range wl.Items {
		if !(item.ProductID == productID && item.Size == size) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(wl.Items) {
		return nil
	}

	return m.writeItems(ctx, customerID, kept)
}

func (m *mongoRepository) writeItems(ctx context.Context, customerID string, items []Item) error {
	filter := bson.M{"customer_id": customerID}
	update := bson.M{"$set": bson.M{
		"items":      items,
		"updated_at": time.Now(),
	}}

	if _, err := m.collection.UpdateOne(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to update wishlist items: %w", err)
	}
	return nil
}
