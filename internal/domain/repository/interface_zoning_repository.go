package repository

import (
	"context"

	"TerraNebular-Backend/internal/domain/model"
)

// ZoningRepository is the geometry-store boundary of the spatial
// resolver.
type ZoningRepository interface {
	// FindContainingZone returns the zoning polygon containing the
	// point, or (nil, nil) when the point is outside every mapped
	// zone. Overlapping polygons are tie-broken deterministically by
	// distance to centroid, then by object id. There is no nearest
	// fallback on this path.
	FindContainingZone(ctx context.Context, lat, lng float64) (*model.SpatialQueryResult, error)

	// FindNearest returns up to limit polygons within
	// maxDistanceMeters of the point, ordered by ascending distance.
	// This is a separate advisory operation, never substituted for a
	// containment miss.
	FindNearest(ctx context.Context, lat, lng, maxDistanceMeters float64, limit int) ([]model.SpatialQueryResult, error)

	// GetZoneBoundaries returns zoning geometry as GeoJSON features,
	// optionally filtered by zone names and a bounding box.
	GetZoneBoundaries(ctx context.Context, zoneNames []string, bounds *model.Bounds) ([]model.BoundaryFeature, error)

	// GetStats reports geometry-store contents.
	GetStats(ctx context.Context) (*model.DatabaseStats, error)
}
