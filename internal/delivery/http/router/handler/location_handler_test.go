package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))

	return env
}

func TestLocationHandler_GetCurrentLocation(t *testing.T) {
	f := newHandlerFixture(t)
	c, rec := f.get("/location/current")

	require.NoError(t, f.location.GetCurrentLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec.Body.Bytes())
	assert.JSONEq(t, `{"latitude":12.97,"longitude":77.59}`, string(env.Data))
}

func TestLocationHandler_ReverseGeocode(t *testing.T) {
	f := newHandlerFixture(t)
	f.geocoder.EXPECT().
		ReverseGeocode(mock.Anything, mock.Anything).
		Return(map[string]string{"road": "Main St", "town": "Springfield", "state": "IL", "postcode": "62701", "country": "USA"}, nil)

	c, rec := f.get("/location/reverse?lat=39.78&lng=-89.65")
	require.NoError(t, f.location.ReverseGeocode(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data ReverseGeocodeResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec.Body.Bytes()).Data, &data))
	assert.True(t, data.Resolved)
	assert.Equal(t, "Springfield", data.Address.City)
	assert.Equal(t, "Main St", data.Address.Line1)
}

func TestLocationHandler_ReverseGeocode_FallsBackToEmptyAddress(t *testing.T) {
	f := newHandlerFixture(t)
	f.geocoder.EXPECT().
		ReverseGeocode(mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream 503"))

	c, rec := f.get("/location/reverse?lat=12.97&lng=77.59")
	require.NoError(t, f.location.ReverseGeocode(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data ReverseGeocodeResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec.Body.Bytes()).Data, &data))
	assert.False(t, data.Resolved)
	assert.True(t, data.Address.IsEmpty())
}

func TestLocationHandler_ReverseGeocode_InvalidQuery(t *testing.T) {
	tests := []string{
		"/location/reverse?lat=12.97",
		"/location/reverse?lat=abc&lng=77.59",
		"/location/reverse?lat=95&lng=77.59",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			f := newHandlerFixture(t)
			c, rec := f.get(target)

			require.NoError(t, f.location.ReverseGeocode(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeEnvelope(t, rec.Body.Bytes())
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		})
	}
}

func TestLocationHandler_Distance(t *testing.T) {
	f := newHandlerFixture(t)
	c, rec := f.get("/location/distance?from_lat=0&from_lng=0&to_lat=0&to_lng=1")

	require.NoError(t, f.location.Distance(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data DistanceResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec.Body.Bytes()).Data, &data))
	assert.InDelta(t, 111.19, data.DistanceKm, 0.5)
}

func TestLocationHandler_Distance_OutOfRange(t *testing.T) {
	f := newHandlerFixture(t)
	c, rec := f.get("/location/distance?from_lat=0&from_lng=0&to_lat=0&to_lng=181")

	require.NoError(t, f.location.Distance(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
