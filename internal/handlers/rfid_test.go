package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-rfid-launcher/internal/models"
)

func TestResolveTagHandler(t *testing.T) {
	tests := []struct {
		name            string
		target          string
		setupMocks      func(m *MockTagResolver)
		expectedStatus  int
		expectedMessage string
		expectedData    string
	}{
		{
			name:   "found",
			target: "/rfid?uid=ab-12",
			setupMocks: func(m *MockTagResolver) {
				m.EXPECT().ResolveTag(gomock.Any(), "ab-12").Return(testUser(), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Opening the music/playlist of Ana",
			expectedData:    `{"name":"Ana"}`,
		},
		{
			name:            "missing uid",
			target:          "/rfid",
			setupMocks:      func(m *MockTagResolver) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "UID parameter is required",
			expectedData:    "null",
		},
		{
			name:   "not found",
			target: "/rfid?uid=ab12",
			setupMocks: func(m *MockTagResolver) {
				m.EXPECT().ResolveTag(gomock.Any(), "ab12").Return(nil, models.ErrUserNotFound)
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "User not found",
			expectedData:    "null",
		},
		{
			name:   "blank uid after normalization",
			target: "/rfid?uid=%20%20",
			setupMocks: func(m *MockTagResolver) {
				m.EXPECT().ResolveTag(gomock.Any(), "  ").Return(nil, models.NewValidationError("uid", "must not be empty"))
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "uid: must not be empty",
			expectedData:    "null",
		},
		{
			name:   "store failure is not leaked",
			target: "/rfid?uid=ab-12",
			setupMocks: func(m *MockTagResolver) {
				m.EXPECT().ResolveTag(gomock.Any(), "ab-12").Return(nil, assert.AnError)
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Internal server error",
			expectedData:    "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockTagResolver(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()

			NewResolveTagHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedMessage, env.Message)
			assert.JSONEq(t, tt.expectedData, string(env.Data))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, models.StatusSuccess, env.Status)
			} else {
				assert.Equal(t, models.StatusError, env.Status)
			}
		})
	}
}
