package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roombook/config"
	"roombook/infras/otel/mocks"
	roomMocks "roombook/internal/domains/room/mocks"
	"roombook/internal/domains/room/model/dto"
	roomHandler "roombook/internal/handlers/room"
	cacheMocks "roombook/shared/cache/mocks"
	transport "roombook/transport/http"
	"roombook/transport/http/middleware"
	"roombook/transport/http/router"
)

func newServer(t *testing.T) (*transport.HTTP, *roomMocks.MockRoomService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rooms := roomMocks.NewMockRoomService(ctrl)
	ot := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.Name = "roombook"

	mw := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))
	r := router.New(router.DomainHandlers{Room: roomHandler.New(rooms, ot)})

	return transport.New(cfg, r, mw, ot, nil), rooms
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())

	for _, state := range []transport.ServerState{transport.ServerStateInGracePeriod, transport.ServerStateInCleanupPeriod} {
		server.SetState(state)

		rec = httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":503,"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
	}
}

func TestHTTP_MountsDomainRoutesAtRoot(t *testing.T) {
	server, rooms := newServer(t)

	rooms.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(dto.GetRoomsResponse{Content: []dto.RoomResponse{}}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTP_RecoversFromPanics(t *testing.T) {
	server, rooms := newServer(t)

	rooms.EXPECT().Get(gomock.Any(), "Earth").DoAndReturn(func(_, _ any) (dto.RoomResponse, error) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/Earth", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
