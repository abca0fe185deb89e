package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLng(t *testing.T) {
	p, err := ParseLatLng("14.5995", "120.9842")
	require.NoError(t, err)
	assert.Equal(t, LatLng{Lat: 14.5995, Lng: 120.9842}, p)
	assert.Equal(t, "14.5995,120.9842", p.String())

	_, err = ParseLatLng("north", "120.9842")
	assert.Error(t, err)
	_, err = ParseLatLng("14.5995", "")
	assert.Error(t, err)
}

func TestDistanceMeters(t *testing.T) {
	manila := LatLng{Lat: 14.5995, Lng: 120.9842}
	quezon := LatLng{Lat: 14.6760, Lng: 121.0437}

	d := manila.DistanceMeters(quezon)
	// Roughly 10.6 km between the two city centers.
	assert.InDelta(t, 10640, d, 300)

	assert.Equal(t, manila.DistanceMeters(quezon), quezon.DistanceMeters(manila))
	assert.Zero(t, manila.DistanceMeters(manila))
}
