package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// minDescriptionLen matches the validation rule applied at the API
// boundary; Validate re-checks it so a Place can never be persisted
// with a shorter description regardless of entry point.
const minDescriptionLen = 4

// Location is a geographic coordinate pair resolved from a postal address.
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Place represents a listed place owned by exactly one user.
// Creator references the owning User document; the same relationship is
// mirrored in the owner's "places" array and both sides are kept
// consistent by the place service's transactional writes.
type Place struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Address     string             `bson:"address"`
	Location    Location           `bson:"location"`
	ImagePath   string             `bson:"image"`
	Creator     primitive.ObjectID `bson:"creator"`
}

// NewPlace creates a Place ready for insertion with a fresh ObjectID.
func NewPlace(
	title, description, address string,
	location Location,
	imagePath string,
	creator primitive.ObjectID,
) (*Place, error) {
	place := &Place{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		Address:     address,
		Location:    location,
		ImagePath:   imagePath,
		Creator:     creator,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks that the place document is internally consistent.
func (p *Place) Validate() error {
	if p.ID.IsZero() {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if p.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	if len(p.Description) < minDescriptionLen {
		return NewValidationError("description", "is too short", ErrValidation)
	}
	if p.Address == "" {
		return NewValidationError("address", "cannot be empty", ErrValidation)
	}
	if p.Creator.IsZero() {
		return NewValidationError("creator", "cannot be empty", ErrInvalidID)
	}
	return nil
}
