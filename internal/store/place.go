package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/domain"
)

// PlaceStore defines the interface for place data persistence.
type PlaceStore interface {
	// Create saves a new place to the store.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place by its unique ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Place, error)

	// ListByCreator returns all places owned by the given user.
	// A user with no places yields an empty slice, not an error.
	ListByCreator(ctx context.Context, creator primitive.ObjectID) ([]domain.Place, error)

	// Update persists changes to an existing place.
	// Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place from the store by its ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
