package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgUserNotFound   = "User not found"
	msgUserExists     = "User with this UID already exists"
	msgInternalServer = "Internal server error"
)

// writeJSON writes the response envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, resp models.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeServiceError maps domain errors to status codes. Unknown errors are
// logged and reported as a generic internal error.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, models.NewErrorResponse(ve.Error()))
	case errors.Is(err, models.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse(msgUserNotFound))
	case errors.Is(err, models.ErrUserAlreadyExists):
		writeJSON(w, http.StatusConflict, models.NewErrorResponse(msgUserExists))
	default:
		logger.Log.Errorw("internal server error", "op", op, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.NewErrorResponse(msgInternalServer))
	}
}
