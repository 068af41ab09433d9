package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/store"
)

// MemoryUserStore is an in-memory implementation of store.UserStore.
// Error fields, when set, force the corresponding method to fail, which
// tests use to exercise rollback paths.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]domain.User

	CreateErr      error
	ListErr        error
	AddPlaceErr    error
	RemovePlaceErr error
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[primitive.ObjectID]domain.User)}
}

// Ensure MemoryUserStore implements store.UserStore.
var _ store.UserStore = (*MemoryUserStore)(nil)

// Create implements store.UserStore.Create.
func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	s.users[user.ID] = *user
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *MemoryUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := user
	return &copied, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements store.UserStore.List.
func (s *MemoryUserStore) List(ctx context.Context) ([]domain.User, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

// AddPlace implements store.UserStore.AddPlace.
func (s *MemoryUserStore) AddPlace(ctx context.Context, userID, placeID primitive.ObjectID) error {
	if s.AddPlaceErr != nil {
		return s.AddPlaceErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	if !user.OwnsPlace(placeID) {
		user.Places = append(user.Places, placeID)
	}
	s.users[userID] = user
	return nil
}

// RemovePlace implements store.UserStore.RemovePlace.
func (s *MemoryUserStore) RemovePlace(ctx context.Context, userID, placeID primitive.ObjectID) error {
	if s.RemovePlaceErr != nil {
		return s.RemovePlaceErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	places := user.Places[:0]
	for _, id := range user.Places {
		if id != placeID {
			places = append(places, id)
		}
	}
	user.Places = places
	s.users[userID] = user
	return nil
}

// snapshot returns a deep copy of the current state for rollback.
func (s *MemoryUserStore) snapshot() map[primitive.ObjectID]domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[primitive.ObjectID]domain.User, len(s.users))
	for id, user := range s.users {
		places := make([]primitive.ObjectID, len(user.Places))
		copy(places, user.Places)
		user.Places = places
		copied[id] = user
	}
	return copied
}

// restore replaces the current state with a snapshot.
func (s *MemoryUserStore) restore(snap map[primitive.ObjectID]domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap
}
