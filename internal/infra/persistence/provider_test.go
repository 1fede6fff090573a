package persistence

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewStoreLocationRepository(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("rest", func(t *testing.T) {
		repo, err := NewStoreLocationRepository(RepositoryParams{
			Lc: fxtest.NewLifecycle(t),
			Config: &config.Config{Datastore: &config.DatastoreConfig{
				Provider:    "rest",
				RESTBaseURL: "https://example.supabase.co/rest/v1",
				RESTTimeout: time.Second,
			}},
			Logger: logger,
		})
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("rest without url", func(t *testing.T) {
		_, err := NewStoreLocationRepository(RepositoryParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Datastore: &config.DatastoreConfig{Provider: "rest"}},
			Logger: logger,
		})
		assert.Error(t, err)
	})

	t.Run("postgres without config", func(t *testing.T) {
		_, err := NewStoreLocationRepository(RepositoryParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Datastore: &config.DatastoreConfig{Provider: "postgres"}},
			Logger: logger,
		})
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewStoreLocationRepository(RepositoryParams{
			Lc:     fxtest.NewLifecycle(t),
			Config: &config.Config{Datastore: &config.DatastoreConfig{Provider: "mongo"}},
			Logger: logger,
		})
		assert.Error(t, err)
	})
}
