package mocks

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/geocode"
	"github.com/placez/placez-api/internal/service/auth"
)

// MockJWTService is a configurable test double for auth.JWTService.
type MockJWTService struct {
	Token       string
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error
}

// Ensure MockJWTService implements auth.JWTService.
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID primitive.ObjectID, email string) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	if m.Token != "" {
		return m.Token, nil
	}
	return "mock-token-" + userID.Hex(), nil
}

// ValidateToken implements auth.JWTService.ValidateToken.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}

// StubGeocoder is a Geocoder returning a fixed location or error.
type StubGeocoder struct {
	Location domain.Location
	Err      error

	// Addresses records every address resolved, in order.
	Addresses []string
}

// Ensure StubGeocoder implements geocode.Geocoder.
var _ geocode.Geocoder = (*StubGeocoder)(nil)

// Resolve implements geocode.Geocoder.Resolve.
func (g *StubGeocoder) Resolve(ctx context.Context, address string) (domain.Location, error) {
	g.Addresses = append(g.Addresses, address)
	if g.Err != nil {
		return domain.Location{}, g.Err
	}
	return g.Location, nil
}

// RecordingFileRemover records removed paths instead of touching disk.
type RecordingFileRemover struct {
	mu      sync.Mutex
	Removed []string
}

// Remove implements service.FileRemover.Remove.
func (r *RecordingFileRemover) Remove(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Removed = append(r.Removed, path)
}

// PlainPasswordHasher "hashes" by prefixing, keeping service tests
// independent of bcrypt's cost.
type PlainPasswordHasher struct{}

// Hash implements auth.PasswordHasher.Hash.
func (PlainPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

// PlainPasswordVerifier verifies against PlainPasswordHasher's output.
type PlainPasswordVerifier struct{}

// Compare implements auth.PasswordVerifier.Compare.
func (PlainPasswordVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}
