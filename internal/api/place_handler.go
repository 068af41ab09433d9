package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/platform/logger"
	"github.com/placez/placez-api/internal/service"
)

// PlaceHandler handles place CRUD requests.
type PlaceHandler struct {
	placeService *service.PlaceService
	uploads      ImageStore
	validator    *validator.Validate
	logger       *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler with the given dependencies.
func NewPlaceHandler(
	placeService *service.PlaceService,
	uploads ImageStore,
	log *slog.Logger,
) *PlaceHandler {
	if log == nil {
		log = slog.Default()
	}

	return &PlaceHandler{
		placeService: placeService,
		uploads:      uploads,
		validator:    validator.New(),
		logger:       log.With(slog.String("component", "place_handler")),
	}
}

// GetPlace handles GET /api/places/{pid}.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID, err := getPathObjectID(r, "pid")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	place, err := h.placeService.GetByID(r.Context(), placeID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]PlaceResponse{
		"place": placeToResponse(place),
	})
}

// ListPlacesByUser handles GET /api/places/user/{uid}. A user with no
// places gets 200 and an empty list, not 404.
func (h *PlaceHandler) ListPlacesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathObjectID(r, "uid")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	places, err := h.placeService.ListByUser(r.Context(), userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	responses := make([]PlaceResponse, 0, len(places))
	for i := range places {
		responses = append(responses, placeToResponse(&places[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string][]PlaceResponse{
		"places": responses,
	})
}

// CreatePlace handles POST /api/places. The body is multipart: title,
// description, and address fields plus an image file. The creator is
// the authenticated user; a creator field in the body is ignored.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	creator, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found in request context")
		HandleServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	req := PlaceCreateRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Address:     r.FormValue("address"),
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "An image file is required")
		return
	}
	defer func() { _ = file.Close() }()

	imagePath, err := h.uploads.Save(file, header)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	place, err := h.placeService.Create(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		ImagePath:   imagePath,
		Creator:     creator,
	})
	if err != nil {
		// The image was already written; a failed create must not leave
		// it orphaned on disk.
		h.uploads.Remove(imagePath)
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string]PlaceResponse{
		"place": placeToResponse(place),
	})
}

// UpdatePlace handles PATCH /api/places/{pid}. Only the owner may
// update, and only the title and description are mutable.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	requester, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found in request context")
		HandleServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	placeID, err := getPathObjectID(r, "pid")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	var req PlaceUpdateRequest
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	place, err := h.placeService.Update(r.Context(), placeID, req.Title, req.Description, requester)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]PlaceResponse{
		"place": placeToResponse(place),
	})
}

// DeletePlace handles DELETE /api/places/{pid}. Only the owner may
// delete.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	requester, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found in request context")
		HandleServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	placeID, err := getPathObjectID(r, "pid")
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	if err := h.placeService.Delete(r.Context(), placeID, requester); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "Deleted place",
	})
}
