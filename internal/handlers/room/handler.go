package room

import (
	"net/http"
	"roombook/infras/otel"
	"roombook/internal/domains/room/model/dto"
	"roombook/internal/domains/room/service"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{name}", handler.GetRoomByName)
	})
}

// GetRooms retrieves the bookable rooms.
// @Summary Get all rooms
// @Description Retrieve active rooms with pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param page query int false "Zero based page" default(0)
// @Param pageSize query int false "Page size" default(10)
// @Param sortBy query string false "Sort field" Enums(name, location) default(name)
// @Param direction query string false "Sort direction" Enums(ASC, DESC) default(ASC)
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	if err := queryParams.FromRequest(r, dto.Sortable, dto.DefaultSort); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByName retrieves a room by its name.
// @Summary Get a room by name
// @Tags Room
// @Produce json
// @Param name path string true "Room name"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rooms/{name} [get]
func (handler *Handler) GetRoomByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByName")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	room, err := handler.service.Get(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("room", name).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}
