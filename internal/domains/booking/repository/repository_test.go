package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/repository"
	gModel "roombook/shared/model"
)

func window(startHour, endHour int) model.Booking {
	return model.Booking{
		RoomID:      "room-earth",
		BookingDate: gModel.NewDate(time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)),
		StartTime:   gModel.NewTimeOfDay(time.Date(0, 1, 1, startHour, 0, 0, 0, time.UTC)),
		EndTime:     gModel.NewTimeOfDay(time.Date(0, 1, 1, endHour, 0, 0, 0, time.UTC)),
	}
}

func TestOverlapFilter(t *testing.T) {
	filter := repository.OverlapFilter(window(17, 18))

	where, args := filter.GetWhereClause()

	assert.Equal(t,
		"(room_bookings.room_id = :room_id AND room_bookings.booking_date = :booking_date AND "+
			"room_bookings.status = :status AND room_bookings.start_time < :new_end_time AND "+
			"room_bookings.end_time > :new_start_time)",
		where,
	)
	assert.Equal(t, map[string]any{
		"room_id":        "room-earth",
		"booking_date":   "2030-03-01",
		"status":         model.StatusActive,
		"new_end_time":   "18:00:00",
		"new_start_time": "17:00:00",
	}, args)
}

func TestOverlapFilterBindsProposedWindow(t *testing.T) {
	tests := []struct {
		name      string
		proposed  model.Booking
		wantStart string
		wantEnd   string
	}{
		{name: "single hour", proposed: window(17, 18), wantStart: "17:00:00", wantEnd: "18:00:00"},
		{name: "back to back after", proposed: window(18, 19), wantStart: "18:00:00", wantEnd: "19:00:00"},
		{name: "several hours", proposed: window(9, 12), wantStart: "09:00:00", wantEnd: "12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := repository.OverlapFilter(tt.proposed).GetWhereClause()

			// Strict comparisons keep touching windows apart.
			assert.Contains(t, where, "room_bookings.start_time < :new_end_time")
			assert.Contains(t, where, "room_bookings.end_time > :new_start_time")
			assert.NotContains(t, where, "<=")
			assert.NotContains(t, where, ">=")
			assert.Equal(t, tt.wantEnd, args["new_end_time"])
			assert.Equal(t, tt.wantStart, args["new_start_time"])
		})
	}
}

func TestRoomDayFilter(t *testing.T) {
	where, args := repository.RoomDayFilter("room-earth", "2030-03-01").GetWhereClause()

	assert.Equal(t, "(room_bookings.room_id = :room_id AND room_bookings.booking_date = :booking_date AND room_bookings.status = :status)", where)
	assert.Len(t, args, 3)
}
