package main

import (
	"context"
	"log/slog"
	"os"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/http"
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/service"
	"marketplace/internal/infra/auth"
	"marketplace/internal/infra/geocoding"
	"marketplace/internal/infra/geolocation"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/infra/persistence"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		newLocationObserver,
	)
}

// newLocationObserver exposes the Prometheus metrics to the use cases
func newLocationObserver(m *metrics.Metrics) service.LocationObserver {
	return m
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		geolocation.Module,
		fx.Provide(
			auth.NewJWTService,
			fx.Annotate(
				geocoding.NewNominatimClient,
				fx.As(new(service.ReverseGeocoder)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeoLocatorService,
			impl.NewReverseGeocodeService,
			impl.NewStoreLocationIndex,
			impl.NewLocationFilterService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
			handler.NewListingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
