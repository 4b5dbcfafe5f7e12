//go:build wireinject
// +build wireinject

package di

import (
	"smartoffice/config"
	"smartoffice/infras/otel"
	"smartoffice/infras/postgres"
	"smartoffice/infras/redis"
	bookingHandler "smartoffice/internal/handlers/booking"
	"smartoffice/shared/cache"
	"smartoffice/shared/timezone"
	"smartoffice/transport/http"
	"smartoffice/transport/http/middleware"
	"smartoffice/transport/http/router"

	bookingRepository "smartoffice/internal/domains/booking/repository"
	bookingService "smartoffice/internal/domains/booking/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	timezone.NewClock,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
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
