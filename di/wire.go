//go:build wireinject
// +build wireinject

package di

import (
	"roombook/config"
	"roombook/infras/kafka"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/infras/redis"
	bookingRepository "roombook/internal/domains/booking/repository"
	bookingService "roombook/internal/domains/booking/service"
	employeeRepository "roombook/internal/domains/employee/repository"
	roomRepository "roombook/internal/domains/room/repository"
	roomService "roombook/internal/domains/room/service"
	bookingHandler "roombook/internal/handlers/booking"
	roomHandler "roombook/internal/handlers/room"
	"roombook/shared/cache"
	"roombook/transport/http"
	"roombook/transport/http/middleware"
	"roombook/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	employeeDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
