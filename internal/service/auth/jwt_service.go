package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JWTService defines operations for issuing and verifying the signed
// bearer tokens that bind a user identity to a request.
type JWTService interface {
	// GenerateToken creates a signed token carrying the user's identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID primitive.ObjectID, email string) (string, error)

	// ValidateToken cryptographically verifies the token string and
	// extracts its claims. This is the only trust path: claims are never
	// read from an unverified token. Fails with ErrMalformedToken,
	// ErrExpiredToken, or ErrInvalidToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified identity extracted from a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID primitive.ObjectID

	// Email is the user's email at issuance time.
	Email string

	// ExpiresAt is when the token stops verifying.
	ExpiresAt time.Time
}
