package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

//go:generate mockgen -source=users_update.go -destination=users_update_mock.go -package=handlers

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, uid string, patch models.RFIDUserPatch) (*models.RFIDUser, error)
}

// UpdateUserRequest represents a partial update. Omitted fields are left untouched.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// New display name
	// example: Ana Maria
	Name *string `json:"name,omitempty"`

	// New web link to a track, album or playlist
	// example: https://open.spotify.com/album/xyz
	ResourceLink *string `json:"resourceLink,omitempty"`
}

// NewUpdateUserHandler returns an HTTP handler applying a partial update to a tag owner.
// @Summary Update user
// @Description Changes only the supplied fields of the user registered for the tag
// @Tags users
// @Accept json
// @Produce json
// @Param uid path string true "Tag UID"
// @Param request body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.Response{data=models.RFIDUser} "User updated successfully"
// @Failure 400 {object} models.Response "At least one field (name or resourceLink) is required"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /rfid/users/{uid} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode update user request", "uid", uid, "error", err)
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(msgInvalidBody))
			return
		}

		patch := models.RFIDUserPatch{Name: req.Name, ResourceLink: req.ResourceLink}
		if patch.Empty() {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("At least one field (name or resourceLink) is required"))
			return
		}

		user, err := svc.UpdateUser(r.Context(), uid, patch)
		if err != nil {
			writeServiceError(w, err, "update user")
			return
		}

		writeJSON(w, http.StatusOK, models.NewSuccessResponse("User updated successfully", user))
	}
}
