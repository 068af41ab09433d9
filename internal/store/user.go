package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users. Password hashes are included on the
	// returned documents; serialization to the wire must exclude them.
	List(ctx context.Context) ([]domain.User, error)

	// AddPlace appends a place ID to the user's place set.
	// Returns ErrUserNotFound if the user does not exist.
	// Callers composing this with a place write run both inside a
	// TxRunner transaction so neither side is visible alone.
	AddPlace(ctx context.Context, userID, placeID primitive.ObjectID) error

	// RemovePlace removes a place ID from the user's place set.
	// Returns ErrUserNotFound if the user does not exist.
	RemovePlace(ctx context.Context, userID, placeID primitive.ObjectID) error
}
