//go:build wireinject
// +build wireinject

package di

import (
	"roam/config"
	"roam/infras/jwt"
	"roam/infras/kafka"
	"roam/infras/otel"
	"roam/infras/postgres"
	"roam/infras/redis"
	"roam/infras/s3"
	"roam/policies"
	"roam/shared/cache"
	"roam/transport/http"
	"roam/transport/http/middleware"
	"roam/transport/http/router"

	"github.com/google/wire"

	"roam/internal/domains/identity/session"

	authService "roam/internal/domains/auth/service"
	bookingRepository "roam/internal/domains/booking/repository"
	bookingService "roam/internal/domains/booking/service"
	propertyRepository "roam/internal/domains/property/repository"
	propertyService "roam/internal/domains/property/service"
	tourRepository "roam/internal/domains/tour/repository"
	tourService "roam/internal/domains/tour/service"
	userRepository "roam/internal/domains/user/repository"
	userService "roam/internal/domains/user/service"

	authHandler "roam/internal/handlers/auth"
	bookingHandler "roam/internal/handlers/booking"
	propertyHandler "roam/internal/handlers/property"
	tourHandler "roam/internal/handlers/tour"
	userHandler "roam/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	policies.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	propertyDomain,
	tourDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	propertyHandler.New,
	tourHandler.New,
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
