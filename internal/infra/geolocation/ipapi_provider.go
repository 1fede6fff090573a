package geolocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

// IPAPIProvider approximates the caller's position from its IP address using
// an ip-api.com compatible endpoint.
type IPAPIProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewIPAPIProvider creates a new IP based position provider.
func NewIPAPIProvider(baseURL string, client *http.Client, logger *slog.Logger) *IPAPIProvider {
	return &IPAPIProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		logger:     logger,
	}
}

type ipapiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// GetCurrentPosition looks up the client IP carried by ctx. Without an IP the
// lookup resolves the server's own address, which is never the caller's
// position, so it is reported as unavailable.
func (p *IPAPIProvider) GetCurrentPosition(ctx context.Context, _ service.PositionOptions) (entity.Coordinate, error) {
	ip := deliverycontext.GetClientIP(ctx)
	if ip == "" {
		return entity.Coordinate{}, &service.PositionError{
			Code:    service.PositionUnavailable,
			Message: "client address unknown",
		}
	}

	endpoint := p.baseURL + "/json/" + url.PathEscape(ip) + "?fields=status,message,lat,lon"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "build ipapi request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return entity.Coordinate{}, ctxErr
		}

		return entity.Coordinate{}, &service.PositionError{
			Code:    service.PositionUnavailable,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return entity.Coordinate{}, &service.PositionError{
			Code:    service.PositionPermissionDenied,
			Message: "location lookup refused",
		}
	}
	if resp.StatusCode != http.StatusOK {
		return entity.Coordinate{}, &service.PositionError{
			Code:    service.PositionUnavailable,
			Message: "ipapi status " + resp.Status,
		}
	}

	var body ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Coordinate{}, &service.PositionError{
			Code:    service.PositionUnavailable,
			Message: "malformed ipapi response",
		}
	}

	if body.Status != "success" {
		p.logger.Debug("IP geolocation lookup failed",
			slog.String("ip", ip),
			slog.String("message", body.Message),
		)

		return entity.Coordinate{}, &service.PositionError{
			Code:    service.PositionUnavailable,
			Message: body.Message,
		}
	}

	return entity.NewCoordinate(body.Lat, body.Lon), nil
}
