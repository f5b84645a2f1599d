package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

//go:generate mockgen -source=users_create.go -destination=users_create_mock.go -package=handlers

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, uid, name, resourceLink string) (*models.RFIDUser, error)
}

// CreateUserRequest represents the JSON body for registering a tag owner
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Raw tag UID, normalized before storing
	// required: true
	// example: ab-12
	UID string `json:"uid"`

	// Display name
	// required: true
	// example: Ana
	Name string `json:"name"`

	// Web link to a track, album or playlist
	// required: true
	// example: https://open.spotify.com/track/abc123
	ResourceLink string `json:"resourceLink"`
}

// NewCreateUserHandler returns an HTTP handler registering a new tag owner.
// @Summary Create user
// @Description Registers a tag owner. The UID is normalized and must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.CreateUserRequest true "New user"
// @Success 201 {object} models.Response{data=models.RFIDUser} "User created successfully"
// @Failure 400 {object} models.Response "Missing required fields (uid, name, resourceLink)"
// @Failure 409 {object} models.Response "User with this UID already exists"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /rfid/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode create user request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(msgInvalidBody))
			return
		}

		if req.UID == "" || req.Name == "" || req.ResourceLink == "" {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("Missing required fields (uid, name, resourceLink)"))
			return
		}

		user, err := svc.CreateUser(r.Context(), req.UID, req.Name, req.ResourceLink)
		if err != nil {
			writeServiceError(w, err, "create user")
			return
		}

		writeJSON(w, http.StatusCreated, models.NewSuccessResponse("User created successfully", user))
	}
}
