package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user of the application.
// The document keeps the bcrypt hash under the legacy "password" field
// and the list of owned place IDs under "places". The plaintext password
// never appears on this type.
type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Name           string               `bson:"name"`
	Email          string               `bson:"email"`
	HashedPassword string               `bson:"password"`
	ImagePath      string               `bson:"image"`
	Places         []primitive.ObjectID `bson:"places"`
}

// NewUser creates a User ready for insertion. The caller must supply an
// already-hashed password; hashing is the password hasher's concern.
func NewUser(name, email, hashedPassword, imagePath string) (*User, error) {
	user := &User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		Email:          email,
		HashedPassword: hashedPassword,
		ImagePath:      imagePath,
		Places:         []primitive.ObjectID{},
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the user document is internally consistent.
// Request-shape validation (email format, password length) happens at
// the API boundary before the document is ever constructed.
func (u *User) Validate() error {
	if u.ID.IsZero() {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if u.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrValidation)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "hash cannot be empty", ErrValidation)
	}
	return nil
}

// OwnsPlace reports whether the given place ID is in the user's place set.
func (u *User) OwnsPlace(placeID primitive.ObjectID) bool {
	for _, id := range u.Places {
		if id == placeID {
			return true
		}
	}
	return false
}
