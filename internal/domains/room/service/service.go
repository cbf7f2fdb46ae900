package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"roombook/config"
	"roombook/infras/otel"
	"roombook/internal/domains/room/model"
	"roombook/internal/domains/room/model/dto"
	"roombook/internal/domains/room/repository"
	"roombook/shared"
	"roombook/shared/cache"
	"roombook/shared/constant"
	gDto "roombook/shared/dto"
	"roombook/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
)

type Room interface {
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, name string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// ActiveFilter matches bookable rooms, optionally narrowed to one name.
func ActiveFilter(name string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if name != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldName,
			Value:    name,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := ActiveFilter(constant.Empty)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, name string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, name)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, ActiveFilter(name))
	if err != nil {
		log.Error().Err(err).Str("room", name).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("Room not found: " + name) // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}
