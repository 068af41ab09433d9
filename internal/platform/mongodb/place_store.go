package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/store"
)

// PlaceStore implements store.PlaceStore backed by the places collection.
type PlaceStore struct {
	coll *mongo.Collection
}

// NewPlaceStore creates a MongoDB implementation of store.PlaceStore.
func NewPlaceStore(db *DB) *PlaceStore {
	return &PlaceStore{coll: db.database.Collection(placesCollection)}
}

// Ensure PlaceStore implements store.PlaceStore.
var _ store.PlaceStore = (*PlaceStore)(nil)

// Create implements store.PlaceStore.Create.
func (s *PlaceStore) Create(ctx context.Context, place *domain.Place) error {
	if err := place.Validate(); err != nil {
		return err
	}

	if _, err := s.coll.InsertOne(ctx, place); err != nil {
		return fmt.Errorf("failed to insert place: %w", err)
	}
	return nil
}

// GetByID implements store.PlaceStore.GetByID.
func (s *PlaceStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Place, error) {
	var place domain.Place
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&place)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to find place by id: %w", err)
	}
	return &place, nil
}

// ListByCreator implements store.PlaceStore.ListByCreator.
func (s *PlaceStore) ListByCreator(ctx context.Context, creator primitive.ObjectID) ([]domain.Place, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"creator": creator})
	if err != nil {
		return nil, fmt.Errorf("failed to list places by creator: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	places := []domain.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		return nil, fmt.Errorf("failed to decode places: %w", err)
	}
	return places, nil
}

// Update implements store.PlaceStore.Update. Only the mutable fields are
// written; address, location, image, and creator are fixed at creation.
func (s *PlaceStore) Update(ctx context.Context, place *domain.Place) error {
	if err := place.Validate(); err != nil {
		return err
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": place.ID},
		bson.M{"$set": bson.M{
			"title":       place.Title,
			"description": place.Description,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update place: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrPlaceNotFound
	}
	return nil
}

// Delete implements store.PlaceStore.Delete.
func (s *PlaceStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrPlaceNotFound
	}
	return nil
}
