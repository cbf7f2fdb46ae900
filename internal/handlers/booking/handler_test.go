package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roombook/infras/otel/mocks"
	bookingMocks "roombook/internal/domains/booking/mocks"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/handlers/booking"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
)

const bookingID = "550e8400-e29b-41d4-a716-446655440000"

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBookingService) {
	t.Helper()

	svc := bookingMocks.NewMockBookingService(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandler_CreateBooking(t *testing.T) {
	const validBody = `{"roomName":"Earth","employeeEmail":"pluto@acme.com","bookingDate":"2030-01-15","startTime":"17:00","endTime":"19:00"}`

	t.Run("returns created booking", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), dto.CreateBookingRequest{
			RoomName:      "Earth",
			EmployeeEmail: "pluto@acme.com",
			BookingDate:   "2030-01-15",
			StartTime:     "17:00",
			EndTime:       "19:00",
		}).Return(dto.BookingResponse{ID: bookingID, RoomName: "Earth", BookedBy: "pluto@acme.com"}, nil)

		rec := serve(router, http.MethodPost, "/bookings", validBody)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.BookingResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, bookingID, body.Data.ID)
		assert.Equal(t, "pluto@acme.com", body.Data.BookedBy)
	})

	t.Run("rejects missing field", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/bookings", `{"employeeEmail":"pluto@acme.com","bookingDate":"2030-01-15","startTime":"17:00","endTime":"19:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errorBody{Status: http.StatusBadRequest, Message: "roomName is required"}, decodeError(t, rec))
	})

	t.Run("rejects empty body", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/bookings", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "request body is required", decodeError(t, rec).Message)
	})

	t.Run("rejects malformed start time", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/bookings", `{"roomName":"Earth","employeeEmail":"pluto@acme.com","bookingDate":"2030-01-15","startTime":"5pm","endTime":"19:00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "startTime must be a time of day formatted HH:MM or HH:MM:SS", decodeError(t, rec).Message)
	})

	t.Run("maps overlap to conflict", func(t *testing.T) {
		router, svc := newRouter(t)

		msg := "This room is already booked for the selected hours or overlaps another booking."
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.Conflict(msg))

		rec := serve(router, http.MethodPost, "/bookings", validBody)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, errorBody{Status: http.StatusConflict, Message: msg}, decodeError(t, rec))
	})
}

func TestHandler_GetBookings(t *testing.T) {
	t.Run("passes parsed query to service", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ListByRoomAndDate(gomock.Any(),
			dto.ListBookingsRequest{RoomName: "Earth", Date: "2030-01-15"},
			gomock.Any(),
		).DoAndReturn(func(_ context.Context, _ dto.ListBookingsRequest, params gDto.QueryParams) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 1, params.Page)
			assert.Equal(t, 5, params.Limit)
			assert.Equal(t, "room_bookings.start_time", params.SortBy)
			assert.Equal(t, "DESC", params.SortDir)

			return dto.GetBookingsResponse{Content: []dto.BookingResponse{}, Page: 1, PageSize: 5}, nil
		})

		rec := serve(router, http.MethodGet, "/bookings?roomName=Earth&date=2030-01-15&page=1&pageSize=5&sortBy=startTime&direction=DESC", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"content":[],"page":1,"pageSize":5,"totalElements":0,"totalPages":0}}`, rec.Body.String())
	})

	tests := []struct {
		name    string
		target  string
		message string
	}{
		{"missing room", "/bookings?date=2030-01-15", "roomName is required"},
		{"malformed date", "/bookings?roomName=Earth&date=15-01-2030", "date must match the format 2006-01-02"},
		{"unknown sort", "/bookings?roomName=Earth&date=2030-01-15&sortBy=password", "invalid sortBy parameter"},
		{"bad direction", "/bookings?roomName=Earth&date=2030-01-15&direction=UP", "direction must be one of ASC DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			rec := serve(router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}

	t.Run("unknown room", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().ListByRoomAndDate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.GetBookingsResponse{}, failure.NotFound("Room not found: Pluto"))

		rec := serve(router, http.MethodGet, "/bookings?roomName=Pluto&date=2030-01-15", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Room not found: Pluto", decodeError(t, rec).Message)
	})
}

func TestHandler_GetBookingByID(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), bookingID).Return(dto.BookingResponse{ID: bookingID}, nil)

	rec := serve(router, http.MethodGet, "/bookings/"+bookingID, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), bookingID)
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Run("returns message", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Cancel(gomock.Any(), bookingID).
			Return(dto.CancelBookingResponse{Message: "Booking was cancelled successfully."}, nil)

		rec := serve(router, http.MethodDelete, "/bookings/cancel/"+bookingID, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Booking was cancelled successfully."}`, rec.Body.String())
	})

	t.Run("unknown booking", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Cancel(gomock.Any(), "nope").Return(dto.CancelBookingResponse{}, failure.NotFound("Booking was not found."))

		rec := serve(router, http.MethodDelete, "/bookings/cancel/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, errorBody{Status: http.StatusNotFound, Message: "Booking was not found."}, decodeError(t, rec))
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Cancel(gomock.Any(), bookingID).Return(dto.CancelBookingResponse{}, assert.AnError)

		rec := serve(router, http.MethodDelete, "/bookings/cancel/"+bookingID, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Message)
	})
}
