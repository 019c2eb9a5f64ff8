//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"villa/config"
	"villa/infras/postgres"
	"villa/infras/redis"
	"villa/infras/s3"
	"villa/infras/whatsapp"
	"villa/shared/cache"
	"villa/transport/http"
	"villa/transport/http/middleware"
	"villa/transport/http/router"

	bookingRepository "villa/internal/domains/booking/repository"
	bookingService "villa/internal/domains/booking/service"
	bookingStore "villa/internal/domains/booking/store"
	galleryRepository "villa/internal/domains/gallery/repository"
	galleryService "villa/internal/domains/gallery/service"
	bookingHandler "villa/internal/handlers/booking"
	galleryHandler "villa/internal/handlers/gallery"
	bookingWorker "villa/internal/workers/booking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	provideOtel,
	redis.New,
	provideKafka,
	s3.New,
	whatsapp.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingStore.NewLoaded,
	bookingService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	galleryDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	galleryHandler.New,
	router.New,
)

func InitializeService(ctx context.Context) (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}

func InitializeWorker() (*bookingWorker.Worker, func(), error) {
	wire.Build(
		configurations,
		provideOtel,
		redis.New,
		provideKafka,
		sharedHelpers,
		bookingWorker.New,
	)

	return nil, nil, nil
}
