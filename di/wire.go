//go:build wireinject
// +build wireinject

package di

import (
	"carserv/config"
	"carserv/infras/kafka"
	"carserv/infras/otel"
	"carserv/infras/postgres"
	"carserv/infras/redis"
	"carserv/shared/cache"
	"carserv/transport/http"
	"carserv/transport/http/middleware"
	"carserv/transport/http/router"

	adminRepository "carserv/internal/domains/admin/repository"
	adminService "carserv/internal/domains/admin/service"
	bookingRepository "carserv/internal/domains/booking/repository"
	bookingService "carserv/internal/domains/booking/service"
	userRepository "carserv/internal/domains/user/repository"
	userService "carserv/internal/domains/user/service"

	adminHandler "carserv/internal/handlers/admin"
	bookingHandler "carserv/internal/handlers/booking"
	userHandler "carserv/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
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

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	userDomain,
	adminDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	userHandler.New,
	adminHandler.New,
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
