package repository

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinServiceArea(t *testing.T) {
	// Kigali city center
	assert.True(t, WithinServiceArea(-1.9536, 30.0606))
	// Huye, southern Rwanda
	assert.True(t, WithinServiceArea(-2.6, 29.74))

	// Kampala, Nairobi, and the open ocean are out.
	assert.False(t, WithinServiceArea(0.3476, 32.5825))
	assert.False(t, WithinServiceArea(-1.2921, 36.8219))
	assert.False(t, WithinServiceArea(0, 0))
}

func TestLatLngToPoint_StorageOrder(t *testing.T) {
	p := LatLngToPoint(-1.95, 30.06)
	assert.Equal(t, 30.06, p.Lon())
	assert.Equal(t, -1.95, p.Lat())
}

func TestDecodeGeometry(t *testing.T) {
	raw := []byte(`{"type":"Polygon","coordinates":[[[30.05,-1.96],[30.07,-1.96],[30.07,-1.94],[30.05,-1.94],[30.05,-1.96]]]}`)
	g, err := DecodeGeometry(raw)
	require.NoError(t, err)
	_, ok := g.(orb.Polygon)
	assert.True(t, ok)

	_, err = DecodeGeometry([]byte(`not json`))
	assert.Error(t, err)
}

func TestCentroidDistanceMeters(t *testing.T) {
	raw := []byte(`{"type":"Polygon","coordinates":[[[30.05,-1.96],[30.07,-1.96],[30.07,-1.94],[30.05,-1.94],[30.05,-1.96]]]}`)
	g, err := DecodeGeometry(raw)
	require.NoError(t, err)

	// At the centroid the distance is ~0.
	centroid := LatLngToPoint(-1.95, 30.06)
	assert.InDelta(t, 0, CentroidDistanceMeters(centroid, g), 1.0)

	// One hundredth of a degree of latitude is roughly 1.1km.
	offCenter := LatLngToPoint(-1.94, 30.06)
	d := CentroidDistanceMeters(offCenter, g)
	assert.InDelta(t, 1110, d, 60)
}

func TestGeometryAreaSqMeters(t *testing.T) {
	raw := []byte(`{"type":"Polygon","coordinates":[[[30.05,-1.96],[30.07,-1.96],[30.07,-1.94],[30.05,-1.94],[30.05,-1.96]]]}`)
	g, err := DecodeGeometry(raw)
	require.NoError(t, err)

	// 0.02 x 0.02 degrees near the equator is roughly 4.9 km².
	area := GeometryAreaSqMeters(g)
	assert.InDelta(t, 4.9e6, area, 0.3e6)
}

func TestGeometryToModel(t *testing.T) {
	raw := []byte(`{"type":"Point","coordinates":[30.06,-1.95]}`)
	g, err := DecodeGeometry(raw)
	require.NoError(t, err)

	m := GeometryToModel(g)
	assert.Equal(t, "Point", m.Type)
	assert.NotNil(t, m.Coordinates)
}
