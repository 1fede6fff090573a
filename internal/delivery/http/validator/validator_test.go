package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `query:"lng" validate:"required,min=-180,max=180"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	lat, lng := 12.97, 77.59
	require.NoError(t, v.Validate(&point{Latitude: &lat, Longitude: &lng}))

	bad := 95.0
	err := v.Validate(&point{Latitude: &bad})
	require.Error(t, err)

	msg := Describe(err)
	assert.Contains(t, msg, "latitude: max=90")
	assert.Contains(t, msg, "lng: required")
}
