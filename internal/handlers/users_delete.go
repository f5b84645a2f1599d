package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

//go:generate mockgen -source=users_delete.go -destination=users_delete_mock.go -package=handlers

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}

// NewDeleteUserHandler returns an HTTP handler removing a tag owner.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param uid path string true "Tag UID"
// @Success 200 {object} models.Response "User deleted successfully"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /rfid/users/{uid} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteUser(r.Context(), chi.URLParam(r, "uid")); err != nil {
			writeServiceError(w, err, "delete user")
			return
		}

		writeJSON(w, http.StatusOK, models.NewSuccessResponse("User deleted successfully", nil))
	}
}
