package api

import (
	"github.com/placez/placez-api/internal/domain"
)

// Common request/response structures

// SignupRequest defines the form fields for the signup endpoint. The
// image arrives as a multipart file alongside these fields.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// PlaceCreateRequest defines the form fields for place creation. The
// image arrives as a multipart file alongside these fields.
type PlaceCreateRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=4"`
	Address     string `json:"address"     validate:"required"`
}

// PlaceUpdateRequest defines the payload for place updates. Only the
// title and description are mutable.
type PlaceUpdateRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=4"`
}

// AuthResponse defines the successful response for the signup and login
// endpoints. The token is also delivered as an HTTP-only cookie.
type AuthResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// UserResponse is the wire representation of a user. The password hash
// is deliberately absent from this type.
type UserResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Image  string   `json:"image"`
	Places []string `json:"places"`
}

// LocationResponse carries resolved coordinates.
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResponse is the wire representation of a place.
type PlaceResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Location    LocationResponse `json:"location"`
	Image       string           `json:"image"`
	Creator     string           `json:"creator"`
}

// userToResponse converts a domain user to its wire form, dropping the
// password hash.
func userToResponse(u *domain.User) UserResponse {
	places := make([]string, 0, len(u.Places))
	for _, pid := range u.Places {
		places = append(places, pid.Hex())
	}
	return UserResponse{
		ID:     u.ID.Hex(),
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.ImagePath,
		Places: places,
	}
}

// placeToResponse converts a domain place to its wire form.
func placeToResponse(p *domain.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location: LocationResponse{
			Lat: p.Location.Lat,
			Lng: p.Location.Lng,
		},
		Image:   p.ImagePath,
		Creator: p.Creator.Hex(),
	}
}
