package service

import (
	"net/http"
	"roombook/shared/failure"
	"roombook/shared/model"
	"roombook/shared/timezone"
	"time"
)

// Slot is the booking granularity, a booking lasts a whole number of slots.
const Slot = time.Hour

var (
	ErrPastDate = &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "This day is gone forever.",
	}
	ErrInvertedRange = &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "This booking can only take place in a time machine!",
	}
	ErrInvalidDuration = &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "Bookings should last at least 1 hour or consecutive multiples of 1 hour (2, 3, 4, ...).",
	}
)

// ValidateSchedule checks a requested window against now. Only the calendar
// day of date and the wall clock of start and end are considered. The checks
// run in order: past day, inverted range, duration.
func ValidateSchedule(date, start, end, now time.Time) error {
	if timezone.StartOfDay(date).Before(timezone.StartOfDay(now)) {
		return ErrPastDate
	}

	startClock := model.NewTimeOfDay(start)
	endClock := model.NewTimeOfDay(end)

	if endClock.Before(startClock.Time) {
		return ErrInvertedRange
	}

	duration := endClock.Sub(startClock.Time)
	if duration < Slot || duration%Slot != 0 {
		return ErrInvalidDuration
	}

	return nil
}
