package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/25nandu/Citimart-web-app/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrOfferNotFound = errors.New("offer not found")

type Repository interface {
	FindByCode(ctx context.Context, code string) (*domain.Offer, error)
	// ListActive returns offers whose validity window contains now, with the
	// status re-derived, regardless of the stored status field.
	ListActive(ctx context.Context, now time.Time) ([]*domain.Offer, error)
	Create(ctx context.Context, offer *domain.Offer) (string, error)
	Update(ctx context.Context, offer *domain.Offer) error
	Delete(ctx context.Context, id string) error
	// SweepStatuses rewrites the cached status field from the validity
	// windows. Idempotent and safe to run concurrently: each statement is a
	// conditional bulk update keyed on date comparison.
	SweepStatuses(ctx context.Context, now time.Time) error
}

type mongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) Repository {
	return &mongoRepository{
		collection: db.Collection("offers"),
	}
}

func (m *mongoRepository) FindByCode(ctx context.Context, code string) (*domain.Offer, error) {
	var offer domain.Offer

	filter := bson.M{"code": code}
	err := m.collection.FindOne(ctx, filter).Decode(&offer)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}

	offer.Status = DeriveStatus(&offer, time.Now())
	return &offer, nil
}

func (m *mongoRepository) ListActive(ctx context.Context, now time.Time) ([]*domain.Offer, error) {
	// Query by dates, not by the cached status field.
	filter := bson.M{
		"start_date": bson.M{"$lte": now},
		"end_date":   bson.M{"$gte": now},
	}

	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list active offers: %w", err)
	}
	defer cursor.Close(ctx)

	var offers []*domain.Offer
	for cursor.Next(ctx) {
		var offer domain.Offer
		if decErr := cursor.Decode(&offer); decErr != nil {
			return nil, fmt.Errorf("failed to decode offer: %w", decErr)
		}
		offer.Status = DeriveStatus(&offer, now)
		offers = append(offers, &offer)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return offers, nil
}

func (m *mongoRepository) Create(ctx context.Context, offer *domain.Offer) (string, error) {
	// Hex string ids keep the document shape identical across stores.
	offer.ID = primitive.NewObjectID().Hex()
	offer.CreatedAt = time.Now()
	offer.Status = DeriveStatus(offer, offer.CreatedAt)

	if _, err := m.collection.InsertOne(ctx, offer); err != nil {
		return "", fmt.Errorf("failed to create offer: %w", err)
	}
	return offer.ID, nil
}

func (m *mongoRepository) Update(ctx context.Context, offer *domain.Offer) error {
	if _, err := primitive.ObjectIDFromHex(offer.ID); err != nil {
		return ErrOfferNotFound
	}

	offer.Status = DeriveStatus(offer, time.Now())
	update := bson.M{"$set": bson.M{
		"code":             offer.Code,
		"title":            offer.Title,
		"description":      offer.Description,
		"type":             offer.Type,
		"amount":           offer.Amount,
		"discount_percent": offer.DiscountPercent,
		"flat_price":       offer.FlatPrice,
		"min_purchase":     offer.MinPurchase,
		"category":         offer.Category,
		"products":         offer.ProductIDs,
		"start_date":       offer.StartDate,
		"end_date":         offer.EndDate,
		"status":           offer.Status,
	}}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": offer.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOfferNotFound
	}
	return nil
}

func (m *mongoRepository) Delete(ctx context.Context, id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return ErrOfferNotFound
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrOfferNotFound
	}
	return nil
}

func (m *mongoRepository) SweepStatuses(ctx context.Context, now time.Time) error {
	// Three conditional bulk updates; execution order does not matter and
	// concurrent sweeps converge on the same result.
	updates := []struct {
		filter bson.M
		status domain.OfferStatus
	}{
		{bson.M{"end_date": bson.M{"$lt": now}}, domain.OfferStatusExpired},
		{bson.M{"start_date": bson.M{"$gt": now}}, domain.OfferStatusUpcoming},
		{bson.M{"start_date": bson.M{"$lte": now}, "end_date": bson.M{"$gte": now}}, domain.OfferStatusActive},
	}

	for _, u := range updates {
		_, err := m.collection.UpdateMany(ctx, u.filter, bson.M{"$set": bson.M{"status": u.status}})
		if err != nil {
			return fmt.Errorf("failed to sweep offer statuses: %w", err)
		}
	}
	return nil
}
