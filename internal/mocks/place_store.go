package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/store"
)

// MemoryPlaceStore is an in-memory implementation of store.PlaceStore.
type MemoryPlaceStore struct {
	mu     sync.Mutex
	places map[primitive.ObjectID]domain.Place

	CreateErr error
	DeleteErr error
	UpdateErr error
}

// NewMemoryPlaceStore creates an empty in-memory place store.
func NewMemoryPlaceStore() *MemoryPlaceStore {
	return &MemoryPlaceStore{places: make(map[primitive.ObjectID]domain.Place)}
}

// Ensure MemoryPlaceStore implements store.PlaceStore.
var _ store.PlaceStore = (*MemoryPlaceStore)(nil)

// Create implements store.PlaceStore.Create.
func (s *MemoryPlaceStore) Create(ctx context.Context, place *domain.Place) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[place.ID] = *place
	return nil
}

// GetByID implements store.PlaceStore.GetByID.
func (s *MemoryPlaceStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	place, ok := s.places[id]
	if !ok {
		return nil, store.ErrPlaceNotFound
	}
	copied := place
	return &copied, nil
}

// ListByCreator implements store.PlaceStore.ListByCreator.
func (s *MemoryPlaceStore) ListByCreator(ctx context.Context, creator primitive.ObjectID) ([]domain.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	places := []domain.Place{}
	for _, place := range s.places {
		if place.Creator == creator {
			places = append(places, place)
		}
	}
	return places, nil
}

// Update implements store.PlaceStore.Update.
func (s *MemoryPlaceStore) Update(ctx context.Context, place *domain.Place) error {
	if s.UpdateErr != nil {
		return s.UpdateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[place.ID]; !ok {
		return store.ErrPlaceNotFound
	}
	s.places[place.ID] = *place
	return nil
}

// Delete implements store.PlaceStore.Delete.
func (s *MemoryPlaceStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return store.ErrPlaceNotFound
	}
	delete(s.places, id)
	return nil
}

// Len reports the number of stored places.
func (s *MemoryPlaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.places)
}

// snapshot returns a copy of the current state for rollback.
func (s *MemoryPlaceStore) snapshot() map[primitive.ObjectID]domain.Place {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[primitive.ObjectID]domain.Place, len(s.places))
	for id, place := range s.places {
		copied[id] = place
	}
	return copied
}

// restore replaces the current state with a snapshot.
func (s *MemoryPlaceStore) restore(snap map[primitive.ObjectID]domain.Place) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places = snap
}
