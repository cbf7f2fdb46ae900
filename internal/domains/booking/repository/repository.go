package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/internal/domains/booking/model"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	gRepo "roombook/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	HasOverlapTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches active bookings of the same room and day whose
// [start, end) window intersects the window of booking.
func OverlapFilter(booking model.Booking) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    booking.RoomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    booking.BookingDate.String(),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusActive,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_end_time",
				Field:    model.FieldStartTime,
				Value:    booking.EndTime.String(),
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_start_time",
				Field:    model.FieldEndTime,
				Value:    booking.StartTime.String(),
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
		},
	}
}

// RoomDayFilter matches the active bookings of a room on one day.
func RoomDayFilter(roomID string, day string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Value:    roomID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldBookingDate,
				Value:    day,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusActive,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (r *repositoryImpl) HasOverlapTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasOverlapTx")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"booking.room_id": booking.RoomID,
		"booking.date":    booking.BookingDate.String(),
	})

	overlap, err := r.ExistTx(ctx, sqltx, OverlapFilter(booking))
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return overlap, nil
}
