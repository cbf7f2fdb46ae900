package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"roombook/config"
	"roombook/infras/kafka"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/repository"
	employeeModel "roombook/internal/domains/employee/model"
	employeeRepo "roombook/internal/domains/employee/repository"
	roomRepo "roombook/internal/domains/room/repository"
	roomService "roombook/internal/domains/room/service"
	"roombook/shared"
	"roombook/shared/cache"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
	"roombook/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// maxCreateAttempts bounds the retries of a create transaction aborted with a
// serialization failure.
const maxCreateAttempts = 3

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
)

const (
	MessageCancelled       = "Booking was cancelled successfully."
	MessageNotFound        = "Booking was not found."
	MessageOverlap         = "This room is already booked for the selected hours or overlaps another booking."
	MessageNotCancellable  = "This is not a future booking so it cannot be canceled."
	MessageAlreadyCanceled = "Booking is already cancelled."
	MessageRoomNotFound    = "Room not found: "
	MessageEmployeeMissing = "Employee not found: "
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.CancelBookingResponse, error)
	ListByRoomAndDate(ctx context.Context, req dto.ListBookingsRequest, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	rooms      roomRepo.Room
	employees  employeeRepo.Employee
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	employees employeeRepo.Employee,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		rooms:      rooms,
		employees:  employees,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafka,
		otel:       otel,
	}
}

type cancelUpdate struct {
	Status string `db:"status"`
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	schedule, err := req.Schedule()
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	if err = ValidateSchedule(schedule.Date, schedule.Start, schedule.End, now); err != nil {
		return res, err
	}

	room, err := s.rooms.Get(ctx, roomService.ActiveFilter(req.RoomName))
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomName).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(MessageRoomNotFound + req.RoomName) // nolint:wrapcheck
	}

	employee, err := s.employees.Get(ctx, shared.FilterByField(req.EmployeeEmail, employeeModel.FieldEmail, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("employee", req.EmployeeEmail).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return res, failure.NotFound(MessageEmployeeMissing + req.EmployeeEmail) // nolint:wrapcheck
	}

	booking := req.ToModel(schedule, room.ID, employee.ID, now)
	booking.RoomName = room.Name
	booking.EmployeeEmail = employee.Email

	insert := func(ctx context.Context, tx *sqlx.Tx) error {
		overlap, err := s.repo.HasOverlapTx(ctx, tx, booking)
		if err != nil {
			return fmt.Errorf("failed to check overlap: %w", err)
		}

		if overlap {
			return failure.Conflict(MessageOverlap) // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return nil
	}

	for attempt := 1; ; attempt++ {
		err = s.transactor.WithinTransaction(ctx, insert)
		if !isSerializationFailure(err) || attempt == maxCreateAttempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Str("room", room.Name).Msg("booking transaction serialization failure, retrying")
	}

	if isBookingConflict(err) {
		log.Warn().Err(err).Str("room", room.Name).Str("date", booking.BookingDate.String()).Msg("booking rejected by concurrent writer")

		return res, failure.Conflict(MessageOverlap) // nolint:wrapcheck
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return res, err
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	log.Info().
		Str("booking", booking.ID).
		Str("room", room.Name).
		Str("date", booking.BookingDate.String()).
		Str("start", booking.StartTime.String()).
		Str("end", booking.EndTime.String()).
		Msg("booking created")

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	s.publish(ctx, EventBookingCreated, res)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	if booking.IsCancelled() {
		return res, failure.BadRequestFromString(MessageAlreadyCanceled) // nolint:wrapcheck
	}

	if !booking.StartsAt().After(timezone.Now()) {
		return res, failure.BadRequestFromString(MessageNotCancellable) // nolint:wrapcheck
	}

	activeFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{
				ArgName:  "current_status",
				Field:    model.FieldStatus,
				Value:    model.StatusActive,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	updatedFields := shared.TransformFields(cancelUpdate{Status: model.StatusCancelled}, constant.ActorAnonymous)
	affected, err := s.repo.Update(ctx, updatedFields, activeFilter)
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if affected == 0 {
		return res, failure.BadRequestFromString(MessageAlreadyCanceled) // nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled

	var event dto.BookingResponse
	event.FromModel(booking)

	log.Info().Str("booking", id).Str("room", booking.RoomName).Msg("booking cancelled")

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	s.publish(ctx, EventBookingCancelled, event)

	res.Message = MessageCancelled

	return res, nil
}

func (s *serviceImpl) ListByRoomAndDate(ctx context.Context, req dto.ListBookingsRequest, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByRoomAndDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := timezone.Parse(constant.DayFormat, req.Date)
	if err != nil {
		return res, failure.BadRequestFromString("date must match the format 2006-01-02") // nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, roomService.ActiveFilter(req.RoomName))
	if err != nil {
		log.Error().Err(err).Str("room", req.RoomName).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(MessageRoomNotFound + req.RoomName) // nolint:wrapcheck
	}

	filter := repository.RoomDayFilter(room.ID, day.Format(constant.DayFormat))
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, parseErr := uuid.Parse(id); parseErr != nil {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound(MessageNotFound) // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// isBookingConflict reports an insert rejected by the no overlap exclusion
// constraint.
func isBookingConflict(err error) bool {
	return hasPqCode(err, constant.PqErrorCodeExclusionViolation)
}

// isSerializationFailure reports a transaction aborted by serializable
// isolation. It says nothing about overlap, the transaction is retried.
func isSerializationFailure(err error) bool {
	return hasPqCode(err, constant.PqErrorCodeSerializationFailure)
}

func hasPqCode(err error, code string) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == code
}
