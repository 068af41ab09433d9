package api

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/platform/logger"
	"github.com/placez/placez-api/internal/service"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temporary files.
const maxMultipartMemory = 8 << 20

// ImageStore persists uploaded images and releases them on failure paths.
type ImageStore interface {
	Save(file multipart.File, header *multipart.FileHeader) (string, error)
	Remove(path string)
}

// UserHandler handles user listing, signup, and login requests.
type UserHandler struct {
	userService   *service.UserService
	uploads       ImageStore
	validator     *validator.Validate
	tokenLifetime time.Duration
	logger        *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userService *service.UserService,
	uploads ImageStore,
	tokenLifetime time.Duration,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		userService:   userService,
		uploads:       uploads,
		validator:     validator.New(),
		tokenLifetime: tokenLifetime,
		logger:        log.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /api/users. The success status is 201, which
// the deployed front end depends on.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
			"Fetching users failed, please try again later", err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, userToResponse(&users[i]))
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, map[string][]UserResponse{
		"users": responses,
	})
}

// Signup handles POST /api/users/signup. The body is multipart: name,
// email, and password fields plus an image file. The uploaded file is
// removed again if registration fails after it was written.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	req := SignupRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
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

	user, token, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password, imagePath)
	if err != nil {
		// The image was already written; registration failing must not
		// leave it orphaned on disk.
		h.uploads.Remove(imagePath)
		HandleServiceError(w, r, err)
		return
	}

	log.Info("user signed up", slog.String("user_id", user.ID.Hex()))

	setTokenCookie(w, token, h.tokenLifetime)
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Token:  token,
	})
}

// Login handles POST /api/users/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data")
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	setTokenCookie(w, token, h.tokenLifetime)
	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Token:  token,
	})
}
