package dto

import (
	"roombook/internal/domains/booking/model"
	"roombook/shared"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
	"roombook/shared/validator"
	"time"

	"github.com/google/uuid"
)

// Sortable lists the sort keys accepted by the booking listing.
var Sortable = gDto.Sortable{
	"bookingDate": model.TableName + "." + model.FieldBookingDate,
	"startTime":   model.TableName + "." + model.FieldStartTime,
	"endTime":     model.TableName + "." + model.FieldEndTime,
	"createdAt":   model.TableName + "." + model.FieldCreatedAt,
	"id":          model.TableName + "." + model.FieldID,
}

const DefaultSort = "bookingDate"

type CreateBookingRequest struct {
	RoomName      string `json:"roomName"      validate:"required,max=100"`
	EmployeeEmail string `json:"employeeEmail" validate:"required,email,max=254"`
	BookingDate   string `json:"bookingDate"   validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime"     validate:"required,timeofday"`
	EndTime       string `json:"endTime"       validate:"required,timeofday"`
}

// Schedule is the parsed booking window of a request.
type Schedule struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

func (c *CreateBookingRequest) Schedule() (Schedule, error) {
	date, err := timezone.Parse(constant.DayFormat, c.BookingDate)
	if err != nil {
		return Schedule{}, failure.BadRequestFromString("bookingDate must match the format 2006-01-02") //nolint:wrapcheck
	}

	start, err := validator.ParseTimeOfDay(c.StartTime)
	if err != nil {
		return Schedule{}, failure.BadRequestFromString("startTime must be a time of day formatted HH:MM or HH:MM:SS") //nolint:wrapcheck
	}

	end, err := validator.ParseTimeOfDay(c.EndTime)
	if err != nil {
		return Schedule{}, failure.BadRequestFromString("endTime must be a time of day formatted HH:MM or HH:MM:SS") //nolint:wrapcheck
	}

	return Schedule{Date: date, Start: start, End: end}, nil
}

func (c *CreateBookingRequest) ToModel(schedule Schedule, roomID, employeeID string, now time.Time) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        roomID,
		EmployeeID:    employeeID,
		BookingDate:   gModel.NewDate(schedule.Date),
		StartTime:     gModel.NewTimeOfDay(schedule.Start),
		EndTime:       gModel.NewTimeOfDay(schedule.End),
		Status:        model.StatusActive,
		RoomName:      c.RoomName,
		EmployeeEmail: c.EmployeeEmail,
		Metadata:      gModel.NewMetadata(c.EmployeeEmail, now),
	}
}

type ListBookingsRequest struct {
	RoomName string `json:"roomName" validate:"required,max=100"`
	Date     string `json:"date"     validate:"required,datetime=2006-01-02"`
}

type BookingResponse struct {
	ID          string `json:"id"`
	RoomName    string `json:"roomName"`
	BookedBy    string `json:"bookedBy"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomName = model.RoomName
	r.BookedBy = model.EmployeeEmail
	r.BookingDate = model.BookingDate.Format(constant.DayFormat)
	r.StartTime = model.StartTime.Format(constant.TimeOfDayFull)
	r.EndTime = model.EndTime.Format(constant.TimeOfDayFull)
	r.Status = model.Status
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Content       []BookingResponse `json:"content"`
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
	TotalElements int               `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData int, params gDto.QueryParams) {
	r.Page = params.Page
	r.PageSize = params.Limit
	r.TotalElements = totalData
	r.TotalPages = shared.CalculateTotalPage(totalData, params.Limit)

	r.Content = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Content[i].FromModel(mod)
	}
}

type CancelBookingResponse struct {
	Message string `json:"message"`
}
