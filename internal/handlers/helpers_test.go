package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

func testUser() *models.RFIDUser {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &models.RFIDUser{
		UID:          "AB-12",
		Name:         "Ana",
		ResourceLink: "https://open.spotify.com/track/abc123?x=1",
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}
