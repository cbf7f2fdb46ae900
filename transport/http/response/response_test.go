package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/failure"
	"roombook/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "failure keeps its status and message",
			err:         failure.NotFound("Room not found: Earth"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Room not found: Earth",
		},
		{
			name:        "conflict",
			err:         failure.Conflict("overlap"),
			wantStatus:  http.StatusConflict,
			wantMessage: "overlap",
		},
		{
			name:        "plain error is hidden",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

			var body response.Error
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusOK, map[string]string{"id": "b1"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":"b1"}}`, recorder.Body.String())
}

func TestWithMessage(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithMessage(recorder, http.StatusOK, "Booking was cancelled successfully.")

	assert.JSONEq(t, `{"message":"Booking was cancelled successfully."}`, recorder.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPreparingShutdown(recorder)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"status":503,"message":"SERVER PREPARING TO SHUT DOWN"}`, recorder.Body.String())
}
