package failure_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{Code: http.StatusBadRequest, Message: "This day is gone forever."}

	assert.Equal(t, "This day is gone forever.", f.Error())
}

func TestFailure_JSONShape(t *testing.T) {
	body, err := json.Marshal(failure.NotFound("Room not found: Earth"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":404,"message":"Room not found: Earth"}`, string(body))
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		message string
	}{
		{name: "InvalidPageParam", failure: failure.InvalidPageParam, message: "invalid page parameter"},
		{name: "InvalidPageSizeParam", failure: failure.InvalidPageSizeParam, message: "invalid pageSize parameter"},
		{name: "InvalidSortParam", failure: failure.InvalidSortParam, message: "invalid sortBy parameter"},
		{name: "InvalidDirectionParam", failure: failure.InvalidDirectionParam, message: "direction must be one of ASC DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, tt.failure.Code)
			assert.Equal(t, tt.message, tt.failure.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.Nil(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("validation failed"))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, "validation failed", err.Error())
}

func TestInternalError(t *testing.T) {
	assert.Nil(t, failure.InternalError(nil))

	err := failure.InternalError(errors.New("database connection failed"))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "not found", err: failure.NotFound("Booking was not found."), code: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("overlap"), code: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{name: "failure error", input: failure.Conflict("x"), expected: http.StatusConflict},
		{name: "wrapped failure error", input: fmt.Errorf("create: %w", failure.NotFound("x")), expected: http.StatusNotFound},
		{name: "regular error", input: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", input: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "Room not found: Mars", failure.GetMessage(fmt.Errorf("wrap: %w", failure.NotFound("Room not found: Mars"))))
	assert.Equal(t, "Internal Server Error", failure.GetMessage(errors.New("pq: connection refused")))
}
