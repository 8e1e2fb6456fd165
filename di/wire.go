//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/infras/redis"
	guestHandler "innkeep/internal/handlers/guest"
	roomHandler "innkeep/internal/handlers/room"
	"innkeep/shared/cache"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	guestRepository "innkeep/internal/domains/guest/repository"
	guestService "innkeep/internal/domains/guest/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"

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
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var domains = wire.NewSet(
	guestDomain,
	roomDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	guestHandler.New,
	roomHandler.New,
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
