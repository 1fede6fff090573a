// Package rest implements the persistence layer against the hosted backend's
// auto-generated REST API (PostgREST dialect).
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
)

const maxResponseBytes = 4 << 20

// storeLocationRepository implements the domain.StoreLocationRepository interface.
type storeLocationRepository struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewStoreLocationRepository is the constructor for the REST store location repository.
func NewStoreLocationRepository(baseURL, apiKey string, client *http.Client, logger *slog.Logger) repository.StoreLocationRepository {
	return &storeLocationRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: client,
		logger:     logger,
	}
}

type warehouseAddress struct {
	Lat flexString `json:"lat"`
	Lng flexString `json:"lng"`
}

type storeRecord struct {
	ID                 string            `json:"id"`
	WarehouseAddressID *string           `json:"warehouse_address_id"`
	Address            *warehouseAddress `json:"address"`
}

// FindWarehouseLocations issues one filtered request for all stores.
func (repo *storeLocationRepository) FindWarehouseLocations(ctx context.Context, storeIDs []entity.StoreRef) ([]entity.WarehouseLocationRow, error) {
	if len(storeIDs) == 0 {
		return []entity.WarehouseLocationRow{}, nil
	}

	query := url.Values{}
	query.Set("select", "id,warehouse_address_id,address:addresses!warehouse_address_id(lat,lng)")
	query.Set("id", "in.("+quoteList(storeIDs)+")")
	query.Set("warehouse_address_id", "not.is.null")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, repo.baseURL+"/stores?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build stores request")
	}
	req.Header.Set("Accept", "application/json")
	if repo.apiKey != "" {
		req.Header.Set("apikey", repo.apiKey)
		req.Header.Set("Authorization", "Bearer "+repo.apiKey)
	}

	resp, err := repo.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "stores request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read stores response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.NewDatabaseExecuteError(
			errors.Errorf("stores endpoint status %d: %s", resp.StatusCode, bytes.TrimSpace(body)),
			"failed to find warehouse locations",
		)
	}

	var records []storeRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "decode stores response")
	}

	repo.logger.Debug("Warehouse locations fetched",
		slog.Int("requested", len(storeIDs)),
		slog.Int("returned", len(records)),
	)

	return toWarehouseLocationRows(records), nil
}

func toWarehouseLocationRows(records []storeRecord) []entity.WarehouseLocationRow {
	rows := make([]entity.WarehouseLocationRow, 0, len(records))
	for _, r := range records {
		if r.WarehouseAddressID == nil {
			continue
		}

		row := entity.WarehouseLocationRow{
			StoreID:            entity.StoreRef(r.ID),
			WarehouseAddressID: *r.WarehouseAddressID,
		}
		if r.Address != nil {
			row.Lat = r.Address.Lat.ptr()
			row.Lng = r.Address.Lng.ptr()
		}
		rows = append(rows, row)
	}

	return rows
}

// listEscaper escapes the only two characters PostgREST treats specially
// inside a double quoted list element.
var listEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteList renders ids as a PostgREST list with every element double quoted.
func quoteList(ids []entity.StoreRef) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = `"` + listEscaper.Replace(id.String()) + `"`
	}

	return strings.Join(quoted, ",")
}

// flexString decodes a JSON string or number into an optional string. Any
// other value, null included, leaves it unset.
type flexString struct {
	value string
	valid bool
}

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*f = flexString{}
	if len(trimmed) == 0 {
		return nil
	}

	switch c := trimmed[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexString{value: s, valid: true}
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*f = flexString{value: n.String(), valid: true}
	}

	return nil
}

func (f flexString) ptr() *string {
	if !f.valid {
		return nil
	}
	v := f.value

	return &v
}
