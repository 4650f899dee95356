package repository

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"TerraNebular-Backend/internal/domain/model"
)

// rwandaBound is the national service area. PostGIS stores points as
// POINT(lng lat), so Min/Max are lng-first.
var rwandaBound = orb.Bound{
	Min: orb.Point{28.0, -3.0},
	Max: orb.Point{31.0, -1.0},
}

// LatLngToPoint converts a lat/lng pair into the lng-first orb point
// used everywhere geometry is handled.
func LatLngToPoint(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// WithinServiceArea reports whether the coordinate falls inside the
// Rwanda bounding box.
func WithinServiceArea(lat, lng float64) bool {
	return rwandaBound.Contains(LatLngToPoint(lat, lng))
}

// DecodeGeometry parses the GeoJSON produced by ST_AsGeoJSON.
func DecodeGeometry(raw []byte) (orb.Geometry, error) {
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse geometry JSON: %w", err)
	}
	return g.Geometry(), nil
}

// CentroidDistanceMeters measures the geodesic distance from a point
// to the centroid of a polygon geometry.
func CentroidDistanceMeters(point orb.Point, geometry orb.Geometry) float64 {
	centroid, _ := planar.CentroidArea(geometry)
	return geo.Distance(point, centroid)
}

// GeometryAreaSqMeters returns the geodesic area of a polygon
// geometry in square meters.
func GeometryAreaSqMeters(geometry orb.Geometry) float64 {
	return geo.Area(geometry)
}

// GeometryToModel converts an orb geometry back to the wire shape the
// boundaries endpoint serves.
func GeometryToModel(geometry orb.Geometry) model.Geometry {
	g := geojson.NewGeometry(geometry)
	return model.Geometry{
		Type:        string(geometry.GeoJSONType()),
		Coordinates: g.Coordinates,
	}
}
