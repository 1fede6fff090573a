package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery/http/validator"
	"marketplace/internal/domain/entity"
	"marketplace/internal/infra/geolocation"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase/impl"

	"github.com/labstack/echo/v4"
)

var bangalore = entity.NewCoordinate(12.97, 77.59)

type handlerFixture struct {
	echo     *echo.Echo
	repo     *mockRepo.MockStoreLocationRepository
	geocoder *mockService.MockReverseGeocoder
	location *LocationHandler
	listing  *ListingHandler
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Geolocation.Timeout = time.Second
	logger := newDiscardLogger()

	repo := mockRepo.NewMockStoreLocationRepository(t)
	geocoder := mockService.NewMockReverseGeocoder(t)

	geoLocator := impl.NewGeoLocatorService(impl.GeoLocatorServiceParams{
		Config:   cfg,
		Logger:   logger,
		Provider: geolocation.NewStaticProvider(bangalore),
	})
	reverse := impl.NewReverseGeocodeService(impl.ReverseGeocodeServiceParams{Geocoder: geocoder, Logger: logger})
	index := impl.NewStoreLocationIndex(impl.StoreLocationIndexParams{Repo: repo, Logger: logger})
	filter := impl.NewLocationFilterService(impl.LocationFilterServiceParams{Index: index, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()

	return handlerFixture{
		echo:     e,
		repo:     repo,
		geocoder: geocoder,
		location: NewLocationHandler(LocationHandlerParams{
			GeoLocator:      geoLocator,
			ReverseGeocoder: reverse,
			Logger:          logger,
		}),
		listing: NewListingHandler(ListingHandlerParams{
			Config:     cfg,
			Filter:     filter,
			GeoLocator: geoLocator,
			Logger:     logger,
		}),
	}
}

func (f handlerFixture) get(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func (f handlerFixture) postJSON(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return f.echo.NewContext(req, rec), rec
}

func strPtr(s string) *string {
	return &s
}

func bangaloreRows() []entity.WarehouseLocationRow {
	return []entity.WarehouseLocationRow{
		{StoreID: "store-a", WarehouseAddressID: "w-a", Lat: strPtr("12.97"), Lng: strPtr("77.636145")},
		{StoreID: "store-b", WarehouseAddressID: "w-b", Lat: strPtr("12.97"), Lng: strPtr("78.05145")},
	}
}
