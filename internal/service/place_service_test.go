package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/geocode"
	"github.com/placez/placez-api/internal/mocks"
	"github.com/placez/placez-api/internal/store"
)

type placeFixture struct {
	svc      *PlaceService
	users    *mocks.MemoryUserStore
	places   *mocks.MemoryPlaceStore
	geocoder *mocks.StubGeocoder
	files    *mocks.RecordingFileRemover
	owner    *domain.User
}

func newPlaceFixture(t *testing.T) *placeFixture {
	t.Helper()

	users := mocks.NewMemoryUserStore()
	places := mocks.NewMemoryPlaceStore()
	geocoder := &mocks.StubGeocoder{Location: domain.Location{Lat: 37.4224, Lng: -122.0841}}
	files := &mocks.RecordingFileRemover{}

	owner, err := domain.NewUser("Max", "max@example.com", "hash", "")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), owner))

	svc := NewPlaceService(
		places,
		users,
		mocks.NewMemoryTxRunner(users, places),
		geocoder,
		files,
		slog.Default(),
	)

	return &placeFixture{svc: svc, users: users, places: places, geocoder: geocoder, files: files, owner: owner}
}

func (f *placeFixture) createPlace(t *testing.T) *domain.Place {
	t.Helper()

	place, err := f.svc.Create(context.Background(), CreatePlaceInput{
		Title:       "Cafe",
		Description: "Nice spot downtown",
		Address:     "1600 Amphitheatre Pkwy, Mountain View, CA",
		ImagePath:   "uploads/images/cafe.png",
		Creator:     f.owner.ID,
	})
	require.NoError(t, err)
	return place
}

func TestPlaceService_Create(t *testing.T) {
	t.Parallel()

	t.Run("persists place and owner reference together", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		place := f.createPlace(t)

		assert.Equal(t, domain.Location{Lat: 37.4224, Lng: -122.0841}, place.Location)
		assert.Equal(t, f.owner.ID, place.Creator)

		stored, err := f.places.GetByID(context.Background(), place.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cafe", stored.Title)

		owner, err := f.users.GetByID(context.Background(), f.owner.ID)
		require.NoError(t, err)
		assert.True(t, owner.OwnsPlace(place.ID))

		listed, err := f.svc.ListByUser(context.Background(), f.owner.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, place.ID, listed[0].ID)
	})

	t.Run("address not found propagates and persists nothing", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		f.geocoder.Err = geocode.ErrAddressNotFound

		_, err := f.svc.Create(context.Background(), CreatePlaceInput{
			Title:       "Cafe",
			Description: "Nice spot downtown",
			Address:     "",
			Creator:     f.owner.ID,
		})
		assert.ErrorIs(t, err, geocode.ErrAddressNotFound)
		assert.Zero(t, f.places.Len())
	})

	t.Run("unknown creator fails before any write", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)

		_, err := f.svc.Create(context.Background(), CreatePlaceInput{
			Title:       "Cafe",
			Description: "Nice spot downtown",
			Address:     "somewhere",
			Creator:     primitive.NewObjectID(),
		})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Zero(t, f.places.Len())
	})

	t.Run("failed owner update rolls back the place write", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		f.users.AddPlaceErr = errors.New("write failed")

		_, err := f.svc.Create(context.Background(), CreatePlaceInput{
			Title:       "Cafe",
			Description: "Nice spot downtown",
			Address:     "somewhere",
			Creator:     f.owner.ID,
		})
		require.Error(t, err)

		// Neither side of the dual write may be visible.
		assert.Zero(t, f.places.Len())
		owner, err := f.users.GetByID(context.Background(), f.owner.ID)
		require.NoError(t, err)
		assert.Empty(t, owner.Places)
	})
}

func TestPlaceService_Update(t *testing.T) {
	t.Parallel()

	t.Run("owner can update title and description", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		place := f.createPlace(t)

		updated, err := f.svc.Update(context.Background(), place.ID, "New Title", "New description", f.owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Title", updated.Title)

		stored, err := f.places.GetByID(context.Background(), place.ID)
		require.NoError(t, err)
		assert.Equal(t, "New description", stored.Description)
	})

	t.Run("missing place reports not found even for a non-owner", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)

		_, err := f.svc.Update(context.Background(), primitive.NewObjectID(), "T", "Description", primitive.NewObjectID())
		assert.ErrorIs(t, err, store.ErrPlaceNotFound)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		place := f.createPlace(t)

		_, err := f.svc.Update(context.Background(), place.ID, "T", "Description", primitive.NewObjectID())
		assert.ErrorIs(t, err, domain.ErrForbidden)

		stored, err := f.places.GetByID(context.Background(), place.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cafe", stored.Title)
	})
}

func TestPlaceService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes place, owner reference, and image", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		place := f.createPlace(t)

		require.NoError(t, f.svc.Delete(context.Background(), place.ID, f.owner.ID))

		_, err := f.places.GetByID(context.Background(), place.ID)
		assert.ErrorIs(t, err, store.ErrPlaceNotFound)

		owner, err := f.users.GetByID(context.Background(), f.owner.ID)
		require.NoError(t, err)
		assert.False(t, owner.OwnsPlace(place.ID))

		assert.Equal(t, []string{"uploads/images/cafe.png"}, f.files.Removed)
	})

	t.Run("missing place reports not found", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		err := f.svc.Delete(context.Background(), primitive.NewObjectID(), f.owner.ID)
		assert.ErrorIs(t, err, store.ErrPlaceNotFound)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		place := f.createPlace(t)

		err := f.svc.Delete(context.Background(), place.ID, primitive.NewObjectID())
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, 1, f.places.Len())
	})

	t.Run("failed owner update rolls back the delete", func(t *testing.T) {
		t.Parallel()

		f := newPlaceFixture(t)
		place := f.createPlace(t)
		f.users.RemovePlaceErr = errors.New("write failed")

		err := f.svc.Delete(context.Background(), place.ID, f.owner.ID)
		require.Error(t, err)

		// Both sides must still be intact.
		assert.Equal(t, 1, f.places.Len())
		owner, err := f.users.GetByID(context.Background(), f.owner.ID)
		require.NoError(t, err)
		assert.True(t, owner.OwnsPlace(place.ID))
		assert.Empty(t, f.files.Removed)
	})
}

func TestPlaceService_ListByUser_Empty(t *testing.T) {
	t.Parallel()

	f := newPlaceFixture(t)

	places, err := f.svc.ListByUser(context.Background(), f.owner.ID)
	require.NoError(t, err)
	assert.Empty(t, places)
	assert.NotNil(t, places)
}
