// Package geocode resolves free-text postal addresses to geographic
// coordinates via an external geocoding service.
package geocode

import (
	"context"
	"errors"

	"github.com/placez/placez-api/internal/domain"
)

// ErrAddressNotFound is returned when the upstream resolver reports no
// match for the given address.
var ErrAddressNotFound = errors.New("no location found for address")

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	// Resolve maps an address to a coordinate pair.
	// Fails with ErrAddressNotFound when the resolver has no match.
	Resolve(ctx context.Context, address string) (domain.Location, error)
}
