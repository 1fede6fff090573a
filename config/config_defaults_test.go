package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Geolocation)
	require.NotNil(t, cfg.Geolocation.HighAccuracy)
	assert.True(t, *cfg.Geolocation.HighAccuracy)
	assert.Equal(t, 10*time.Second, cfg.Geolocation.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Geolocation.MaximumAge)

	require.NotNil(t, cfg.Geocoding)
	assert.Equal(t, defaultGeocodingBaseURL, cfg.Geocoding.BaseURL)
	assert.Equal(t, 1.0, cfg.Geocoding.RequestsPerSec)

	require.NotNil(t, cfg.StoreFilter)
	assert.Equal(t, 10.0, cfg.StoreFilter.DefaultRadiusKm)
	assert.Equal(t, 100.0, cfg.StoreFilter.MaxRadiusKm)

	require.NotNil(t, cfg.Datastore)
	assert.Equal(t, "postgres", cfg.Datastore.Provider)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Geolocation: &GeolocationConfig{Provider: "static", Timeout: 3 * time.Second},
		StoreFilter: &StoreFilterConfig{DefaultRadiusKm: 25, MaxRadiusKm: 50},
		Datastore:   &DatastoreConfig{Provider: "rest"},
	}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Geolocation.HighAccuracy)
	assert.True(t, *cfg.Geolocation.HighAccuracy)
	assert.Equal(t, 3*time.Second, cfg.Geolocation.Timeout)
	assert.Equal(t, 25.0, cfg.StoreFilter.DefaultRadiusKm)
	assert.Equal(t, 50.0, cfg.StoreFilter.MaxRadiusKm)
	assert.Equal(t, "rest", cfg.Datastore.Provider)
}

func TestApplyDefaults_HighAccuracyExplicitFalse(t *testing.T) {
	disabled := false
	cfg := &Config{Geolocation: &GeolocationConfig{Provider: "static", HighAccuracy: &disabled}}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Geolocation.HighAccuracy)
	assert.False(t, *cfg.Geolocation.HighAccuracy)
	assert.False(t, cfg.Geolocation.HighAccuracyEnabled())
}

func TestGeolocationConfig_HighAccuracyEnabled_Unset(t *testing.T) {
	assert.True(t, (&GeolocationConfig{}).HighAccuracyEnabled())
}
