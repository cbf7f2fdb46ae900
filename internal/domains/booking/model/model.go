package model

import (
	"fmt"
	"roombook/shared/model"
	"roombook/shared/timezone"
	"time"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldEmployeeID  = "employee_id"
	FieldBookingDate = "booking_date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldStatus      = "status"
	FieldCreatedAt   = "created_at"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

type Booking struct {
	ID            string          `db:"id"`
	RoomID        string          `db:"room_id"`
	EmployeeID    string          `db:"employee_id"`
	BookingDate   model.Date      `db:"booking_date"`
	StartTime     model.TimeOfDay `db:"start_time"`
	EndTime       model.TimeOfDay `db:"end_time"`
	Status        string          `db:"status"`
	RoomName      string          `db:"room_name"      table:"rooms"     column:"name"`
	EmployeeEmail string          `db:"employee_email" table:"employees" column:"email"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf(
		"JOIN rooms ON rooms.id = %[1]s.room_id JOIN employees ON employees.id = %[1]s.employee_id",
		TableName,
	)
}

// StartsAt is the instant the booking begins in the application timezone.
func (b Booking) StartsAt() time.Time {
	return timezone.Combine(b.BookingDate.Time, b.StartTime.Time)
}

func (b Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
