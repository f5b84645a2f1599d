package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

//go:generate mockgen -source=users_list.go -destination=users_list_mock.go -package=handlers

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.RFIDUser, error)
}

// NewListUsersHandler returns an HTTP handler listing every registered tag owner.
// @Summary List users
// @Description Returns all tag owners, most recently created first
// @Tags users
// @Produce json
// @Success 200 {object} models.Response{data=[]models.RFIDUser} "Users retrieved successfully"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /rfid/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeServiceError(w, err, "list users")
			return
		}
		if users == nil {
			users = []models.RFIDUser{}
		}

		writeJSON(w, http.StatusOK, models.NewSuccessResponse("Users retrieved successfully", users))
	}
}
