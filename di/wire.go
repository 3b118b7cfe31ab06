//go:build wireinject
// +build wireinject

package di

import (
	"flavours/config"
	"flavours/infras/otel"
	bookingRepository "flavours/internal/domains/booking/repository"
	bookingService "flavours/internal/domains/booking/service"
	bookingHandler "flavours/internal/handlers/booking"
	"flavours/transport/http"
	"flavours/transport/http/middleware"
	"flavours/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
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
		bookingDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
