package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roombook/config"
	"roombook/infras/otel/mocks"
	roomMocks "roombook/internal/domains/room/mocks"
	"roombook/internal/domains/room/model"
	"roombook/internal/domains/room/model/dto"
	"roombook/internal/domains/room/service"
	"roombook/shared/cache"
	cacheMocks "roombook/shared/cache/mocks"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestRoomService_GetAll(t *testing.T) {
	params := gDto.QueryParams{Page: 0, Limit: 2, SortBy: "rooms.name", SortDir: "ASC"}

	t.Run("cache miss reads repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		mockRepo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Room{
			{ID: "r1", Name: "Earth", Active: true},
			{ID: "r2", Name: "Mars", Active: true},
		}, nil)

		res, err := svc.GetAll(context.Background(), params)

		require.NoError(t, err)
		assert.Len(t, res.Content, 2)
		assert.Equal(t, "Earth", res.Content[0].Name)
		assert.Equal(t, 3, res.TotalElements)
		assert.Equal(t, 2, res.TotalPages)
		assert.Equal(t, 2, res.PageSize)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				res, _ := value.(*dto.GetRoomsResponse)
				res.TotalElements = 7

				return nil
			})

		res, err := svc.GetAll(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, 7, res.TotalElements)
	})

	t.Run("count error", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

		_, err := svc.GetAll(context.Background(), params)

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "found",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), service.ActiveFilter("Earth")).Return(model.Room{ID: "r1", Name: "Earth", Active: true}, nil)
			},
		},
		{
			name: "unknown room",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Room not found: Earth",
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)

			mockCache.EXPECT().Get(gomock.Any(), "room:get:Earth", gomock.Any()).Return(cache.Nil)
			tt.setupMock(mockRepo)

			res, err := svc.Get(context.Background(), "Earth")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "r1", res.ID)
			assert.Equal(t, "Earth", res.Name)
		})
	}
}

func TestActiveFilter(t *testing.T) {
	where, args := service.ActiveFilter("Earth").GetWhereClause()

	assert.Equal(t, "(rooms.active = :active AND rooms.name = :name)", where)
	assert.Equal(t, map[string]any{"active": true, "name": "Earth"}, args)

	where, _ = service.ActiveFilter("").GetWhereClause()
	assert.Equal(t, "(rooms.active = :active)", where)
}
