package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"roombook/internal/domains/booking/model"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
)

func TestBooking_StartsAt(t *testing.T) {
	booking := model.Booking{
		BookingDate: gModel.NewDate(time.Date(2030, time.March, 1, 0, 0, 0, 0, time.UTC)),
		StartTime:   gModel.NewTimeOfDay(time.Date(0, 1, 1, 17, 30, 0, 0, time.UTC)),
	}

	startsAt := booking.StartsAt()

	assert.Equal(t, time.Date(2030, time.March, 1, 17, 30, 0, 0, timezone.GetLocation()), startsAt)
	assert.Equal(t, timezone.GetLocation(), startsAt.Location())
}

func TestBooking_GetJoinQuery(t *testing.T) {
	assert.Equal(t,
		"JOIN rooms ON rooms.id = room_bookings.room_id JOIN employees ON employees.id = room_bookings.employee_id",
		model.Booking{}.GetJoinQuery(),
	)
}

func TestBooking_IsCancelled(t *testing.T) {
	assert.True(t, model.Booking{Status: model.StatusCancelled}.IsCancelled())
	assert.False(t, model.Booking{Status: model.StatusActive}.IsCancelled())
}
