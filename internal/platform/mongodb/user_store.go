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

// UserStore implements store.UserStore backed by the users collection.
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a MongoDB implementation of store.UserStore.
func NewUserStore(db *DB) *UserStore {
	return &UserStore{coll: db.database.Collection(usersCollection)}
}

// Ensure UserStore implements store.UserStore.
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create. Email uniqueness is enforced
// by the unique index; a duplicate key error maps to ErrEmailExists.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrEmailExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// AddPlace implements store.UserStore.AddPlace using $addToSet so a
// retried write cannot duplicate the reference.
func (s *UserStore) AddPlace(ctx context.Context, userID, placeID primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"places": placeID}},
	)
	if err != nil {
		return fmt.Errorf("failed to add place to user: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

// RemovePlace implements store.UserStore.RemovePlace.
func (s *UserStore) RemovePlace(ctx context.Context, userID, placeID primitive.ObjectID) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"places": placeID}},
	)
	if err != nil {
		return fmt.Errorf("failed to remove place from user: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrUserNotFound
	}
	return nil
}
