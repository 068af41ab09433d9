package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/geocode"
	"github.com/placez/placez-api/internal/platform/logger"
	"github.com/placez/placez-api/internal/store"
)

// FileRemover releases a stored image file. Cleanup is best effort;
// implementations log failures instead of returning them.
type FileRemover interface {
	Remove(path string)
}

// CreatePlaceInput carries the fields for a new place. The address is
// resolved to coordinates by the service; the image has already been
// stored by the time the service runs.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	ImagePath   string
	Creator     primitive.ObjectID
}

// PlaceService orchestrates creation, mutation, and deletion of places,
// enforcing ownership and keeping a place document and its owner's
// place list consistent through transactional dual writes.
type PlaceService struct {
	places   store.PlaceStore
	users    store.UserStore
	tx       store.TxRunner
	geocoder geocode.Geocoder
	files    FileRemover
	logger   *slog.Logger
}

// NewPlaceService creates a new PlaceService.
func NewPlaceService(
	places store.PlaceStore,
	users store.UserStore,
	tx store.TxRunner,
	geocoder geocode.Geocoder,
	files FileRemover,
	logger *slog.Logger,
) *PlaceService {
	if places == nil {
		panic("places store cannot be nil")
	}
	if users == nil {
		panic("users store cannot be nil")
	}
	if tx == nil {
		panic("tx runner cannot be nil")
	}
	if geocoder == nil {
		panic("geocoder cannot be nil")
	}
	if files == nil {
		panic("file remover cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PlaceService{
		places:   places,
		users:    users,
		tx:       tx,
		geocoder: geocoder,
		files:    files,
		logger:   logger.With(slog.String("component", "place_service")),
	}
}

// Create geocodes the address, verifies the creator exists, then
// persists the place and appends it to the owner's place set inside one
// transaction. Either both writes commit or neither is visible.
// geocode.ErrAddressNotFound propagates as-is; an unknown creator fails
// with store.ErrUserNotFound before anything is written.
func (s *PlaceService) Create(ctx context.Context, input CreatePlaceInput) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	location, err := s.geocoder.Resolve(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, input.Creator); err != nil {
		return nil, err
	}

	place, err := domain.NewPlace(
		input.Title,
		input.Description,
		input.Address,
		location,
		input.ImagePath,
		input.Creator,
	)
	if err != nil {
		return nil, err
	}

	err = s.tx.InTransaction(ctx, func(txCtx context.Context) error {
		if err := s.places.Create(txCtx, place); err != nil {
			return err
		}
		return s.users.AddPlace(txCtx, input.Creator, place.ID)
	})
	if err != nil {
		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("creator", input.Creator.Hex()))
		return nil, err
	}

	log.Info("place created",
		slog.String("place_id", place.ID.Hex()),
		slog.String("creator", input.Creator.Hex()))
	return place, nil
}

// Update mutates a place's title and description. Existence is checked
// first (store.ErrPlaceNotFound), ownership second (domain.ErrForbidden).
func (s *PlaceService) Update(
	ctx context.Context,
	placeID primitive.ObjectID,
	title, description string,
	requester primitive.ObjectID,
) (*domain.Place, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	if place.Creator != requester {
		return nil, domain.ErrForbidden
	}

	place.Title = title
	place.Description = description
	if err := place.Validate(); err != nil {
		return nil, err
	}

	if err := s.places.Update(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

// Delete removes a place and its reference from the owner's place set
// inside one transaction, then releases the stored image as a best
// effort. Existence is checked before ownership, matching Update.
func (s *PlaceService) Delete(
	ctx context.Context,
	placeID primitive.ObjectID,
	requester primitive.ObjectID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return err
	}

	if place.Creator != requester {
		return domain.ErrForbidden
	}

	err = s.tx.InTransaction(ctx, func(txCtx context.Context) error {
		if err := s.places.Delete(txCtx, placeID); err != nil {
			return err
		}
		return s.users.RemovePlace(txCtx, place.Creator, placeID)
	})
	if err != nil {
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", placeID.Hex()))
		return err
	}

	// The record is gone either way; a leftover file is only logged.
	s.files.Remove(place.ImagePath)

	log.Info("place deleted", slog.String("place_id", placeID.Hex()))
	return nil
}

// GetByID returns a single place by ID.
func (s *PlaceService) GetByID(ctx context.Context, placeID primitive.ObjectID) (*domain.Place, error) {
	return s.places.GetByID(ctx, placeID)
}

// ListByUser returns every place owned by the given user. A user with
// no places yields an empty list, not an error.
func (s *PlaceService) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Place, error) {
	places, err := s.places.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}
