package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

//go:generate mockgen -source=rfid.go -destination=rfid_mock.go -package=handlers

// TagResolver defines the interface that the service must implement.
type TagResolver interface {
	ResolveTag(ctx context.Context, rawUID string) (*models.RFIDUser, error)
}

// ResolveTagData is the payload of a successful tag scan.
// swagger:model ResolveTagData
type ResolveTagData struct {
	// Display name of the tag owner
	// example: Ana
	Name string `json:"name"`
}

// NewResolveTagHandler returns an HTTP handler that identifies the owner of a scanned tag
// and opens their music resource.
// @Summary Resolve a scanned tag
// @Description Normalizes the tag UID, looks up its owner and launches the owner's music resource. Launch failures are logged only.
// @Tags rfid
// @Produce json
// @Param uid query string true "Raw tag UID"
// @Success 200 {object} models.Response{data=handlers.ResolveTagData} "Opening the music/playlist of <name>"
// @Failure 400 {object} models.Response "UID parameter is required"
// @Failure 404 {object} models.Response "User not found"
// @Failure 500 {object} models.Response "Internal server error"
// @Router /rfid [get]
func NewResolveTagHandler(svc TagResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := r.URL.Query().Get("uid")
		if uid == "" {
			writeJSON(w, http.StatusBadRequest, models.NewErrorResponse("UID parameter is required"))
			return
		}

		user, err := svc.ResolveTag(r.Context(), uid)
		if err != nil {
			writeServiceError(w, err, "resolve tag")
			return
		}

		writeJSON(w, http.StatusOK, models.NewSuccessResponse(
			fmt.Sprintf("Opening the music/playlist of %s", user.Name),
			ResolveTagData{Name: user.Name},
		))
	}
}
