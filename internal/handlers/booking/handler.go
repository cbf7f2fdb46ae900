package booking

import (
	"net/http"
	"roombook/infras/otel"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/service"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/validator"
	"roombook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Delete("/cancel/{id}", handler.CancelBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Reserve a room for a whole number of hours on a day that is not in the past.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("room", req.RoomName).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created by " + req.EmployeeEmail)

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetBookings lists the bookings of a room on one day.
// @Summary Get bookings of a room by date
// @Description Active bookings of the room on the given day, paginated and sorted.
// @Tags Booking
// @Accept json
// @Produce json
// @Param roomName query string true "Room name"
// @Param date query string true "Booking date (YYYY-MM-DD)"
// @Param page query int false "Zero based page" default(0)
// @Param pageSize query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" Enums(bookingDate, startTime, endTime, createdAt, id) default(bookingDate)
// @Param direction query string false "Sort direction" Enums(ASC, DESC) default(ASC)
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Page of bookings"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	req := dto.ListBookingsRequest{
		RoomName: r.URL.Query().Get(constant.RequestParamRoomName),
		Date:     r.URL.Query().Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r, dto.Sortable, dto.DefaultSort); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	bookings, err := handler.service.ListByRoomAndDate(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("room", req.RoomName).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a single booking.
// @Summary Get booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking cancels a booking that has not started yet.
// @Summary Cancel a booking
// @Description Only bookings starting after the current time can be cancelled.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking was cancelled successfully."
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/cancel/{id} [delete]
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("booking", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled " + id)

	response.WithMessage(w, http.StatusOK, res.Message)
}
