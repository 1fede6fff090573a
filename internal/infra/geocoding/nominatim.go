// Package geocoding implements reverse geocoding against a Nominatim compatible endpoint.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const maxResponseBytes = 1 << 20

// NominatimParams holds dependencies for the Nominatim client, injected by Fx.
type NominatimParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Client *http.Client `optional:"true"`
}

// NominatimClient resolves coordinates to address details. Requests are
// throttled by a shared limiter to respect the provider's usage policy.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

var _ service.ReverseGeocoder = (*NominatimClient)(nil)

// NewNominatimClient creates a new reverse geocoding client.
func NewNominatimClient(params NominatimParams) *NominatimClient {
	if params.Config.Geocoding == nil {
		params.Config.ApplyDefaults()
	}
	cfg := params.Config.Geocoding

	httpClient := params.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &NominatimClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		logger:     params.Logger,
	}
}

type reverseResponse struct {
	Address map[string]any `json:"address"`
	Error   string         `json:"error"`
}

// ReverseGeocode issues a single reverse lookup and returns the address details.
func (n *NominatimClient) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (map[string]string, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(errors.Wrap(err, "rate limiter wait"))
	}

	params := url.Values{
		"format":         {"json"},
		"lat":            {strconv.FormatFloat(coord.Latitude, 'f', -1, 64)},
		"lon":            {strconv.FormatFloat(coord.Longitude, 'f', -1, 64)},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/reverse?"+params.Encode(), nil)
	if err != nil {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(errors.Wrap(err, "build reverse request"))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(errors.Wrap(err, "reverse request"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(errors.Wrap(err, "read reverse response"))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(
			errors.Errorf("reverse geocode status %d: %s", resp.StatusCode, truncate(string(body), 200)),
		)
	}

	var decoded reverseResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(errors.Wrap(err, "decode reverse response"))
	}
	if decoded.Error != "" {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(errors.New(decoded.Error))
	}
	if decoded.Address == nil {
		return nil, domainerrors.ErrGeocodingFailed.Wrap(errors.New("reverse response has no address"))
	}

	details := make(map[string]string, len(decoded.Address))
	for key, value := range decoded.Address {
		if s, ok := value.(string); ok {
			details[key] = s
		}
	}

	n.logger.Debug("Reverse geocode resolved",
		slog.Float64("latitude", coord.Latitude),
		slog.Float64("longitude", coord.Longitude),
		slog.Int("fields", len(details)),
	)

	return details, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n]
}
