package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreLocationRepository_FindWarehouseLocations(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, "/rest/v1/stores", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "id,warehouse_address_id,address:addresses!warehouse_address_id(lat,lng)", q.Get("select"))
		assert.Equal(t, `in.("store-a","store-b","store-c")`, q.Get("id"))
		assert.Equal(t, "not.is.null", q.Get("warehouse_address_id"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		_, _ = io.WriteString(w, `[
			{"id": "store-a", "warehouse_address_id": "w-a", "address": {"lat": "12.97", "lng": "77.636145"}},
			{"id": "store-b", "warehouse_address_id": "w-b", "address": {"lat": 12.97, "lng": 78.05145}},
			{"id": "store-c", "warehouse_address_id": "w-c", "address": {"lat": null, "lng": "77.6"}},
			{"id": "store-d", "warehouse_address_id": null, "address": null}
		]`)
	}))
	defer srv.Close()

	repo := NewStoreLocationRepository(srv.URL+"/rest/v1/", "anon-key", srv.Client(), newDiscardLogger())

	rows, err := repo.FindWarehouseLocations(context.Background(), []entity.StoreRef{"store-a", "store-b", "store-c"})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 1, requests)

	assert.Equal(t, entity.StoreRef("store-a"), rows[0].StoreID)
	assert.Equal(t, "w-a", rows[0].WarehouseAddressID)
	require.NotNil(t, rows[0].Lat)
	assert.Equal(t, "12.97", *rows[0].Lat)

	require.NotNil(t, rows[1].Lng)
	assert.Equal(t, "78.05145", *rows[1].Lng)

	assert.Nil(t, rows[2].Lat)
	require.NotNil(t, rows[2].Lng)
}

func TestStoreLocationRepository_FindWarehouseLocations_UnusableCoordinateKeepsBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[
			{"id": "store-a", "warehouse_address_id": "w-a", "address": {"lat": "12.97", "lng": "77.636145"}},
			{"id": "store-b", "warehouse_address_id": "w-b", "address": {"lat": true, "lng": {"x": 1}}},
			{"id": "store-c", "warehouse_address_id": "w-c", "address": {"lat": [12.9], "lng": false}}
		]`)
	}))
	defer srv.Close()

	repo := NewStoreLocationRepository(srv.URL, "", srv.Client(), newDiscardLogger())

	rows, err := repo.FindWarehouseLocations(context.Background(), []entity.StoreRef{"store-a", "store-b", "store-c"})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.NotNil(t, rows[0].Lat)
	assert.Equal(t, "12.97", *rows[0].Lat)

	for _, row := range rows[1:] {
		assert.Nil(t, row.Lat, row.StoreID)
		assert.Nil(t, row.Lng, row.StoreID)
	}
}

func TestStoreLocationRepository_FindWarehouseLocations_EmptyInput(t *testing.T) {
	repo := NewStoreLocationRepository("http://unused.invalid", "", http.DefaultClient, newDiscardLogger())

	rows, err := repo.FindWarehouseLocations(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStoreLocationRepository_FindWarehouseLocations_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		isDBErr bool
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"message":"boom"}`, isDBErr: true},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"JWT expired"}`, isDBErr: true},
		{name: "malformed body", status: http.StatusOK, body: `{"id":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			repo := NewStoreLocationRepository(srv.URL, "", srv.Client(), newDiscardLogger())
			rows, err := repo.FindWarehouseLocations(context.Background(), []entity.StoreRef{"store-a"})
			require.Error(t, err)
			assert.Nil(t, rows)

			var appErr domainerrors.AppError
			assert.Equal(t, tt.isDBErr, errors.As(err, &appErr))
		})
	}
}

func TestQuoteList(t *testing.T) {
	tests := []struct {
		name string
		ids  []entity.StoreRef
		want string
	}{
		{name: "plain", ids: []entity.StoreRef{"a", "b,c"}, want: `"a","b,c"`},
		{name: "quote and backslash", ids: []entity.StoreRef{`say "hi"`, `a\b`}, want: `"say \"hi\"","a\\b"`},
		{name: "non ascii and tab kept", ids: []entity.StoreRef{"café\tbar"}, want: "\"café\tbar\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteList(tt.ids))
		})
	}
}
