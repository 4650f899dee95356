package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/lib/pq"

	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
	"TerraNebular-Backend/internal/infrastructure/database"
)

type PostgresZoningRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresZoningRepository(client *database.PostgreSQLClient) repository.ZoningRepository {
	return &PostgresZoningRepository{
		client: client,
	}
}

// zoningResult receives one zoning_data row from a spatial query.
type zoningResult struct {
	ObjectID             int
	ZoneName             string
	ZoneCode             sql.NullString
	Phase                sql.NullString
	YearOfImplementation sql.NullString
	AreaSqKm             sql.NullFloat64
	Level1               sql.NullString
	Level2               sql.NullString
	Level3               sql.NullString
	GlobalID             sql.NullString
	GeometryJSON         []byte
	DistanceMeters       sql.NullFloat64
}

// ToModel converts a scanned row into the domain feature.
func (zr *zoningResult) ToModel() model.ZoningFeature {
	feature := model.ZoningFeature{
		ObjectID: zr.ObjectID,
		ZoneName: zr.ZoneName,
	}
	if zr.ZoneCode.Valid {
		feature.ZoneCode = &zr.ZoneCode.String
	}
	if zr.Phase.Valid {
		feature.Phase = &zr.Phase.String
	}
	if zr.YearOfImplementation.Valid {
		feature.YearOfImplementation = &zr.YearOfImplementation.String
	}
	if zr.AreaSqKm.Valid {
		feature.AreaSqKm = &zr.AreaSqKm.Float64
	}
	if zr.Level1.Valid {
		feature.Level1 = &zr.Level1.String
	}
	if zr.Level2.Valid {
		feature.Level2 = &zr.Level2.String
	}
	if zr.Level3.Valid {
		feature.Level3 = &zr.Level3.String
	}
	if zr.GlobalID.Valid {
		feature.GlobalID = &zr.GlobalID.String
	}
	return feature
}

// storeErr maps driver failures to the sentinel errors the usecases
// report on. A cancelled or timed-out context counts as a store
// timeout since the deadline is owned by the caller.
func storeErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, model.ErrStoreTimeout)
	}
	return fmt.Errorf("%s: %v: %w", op, err, model.ErrStoreUnavailable)
}

const zoningColumns = `
	z.objectid_1, z.new_zoning, z.zone_code, z.phase,
	z.year_of_implementation, z.area_sqkm,
	z.level_1, z.level_2, z.level_3, z.globalid`

// FindContainingZone runs a pure containment query. All containing
// polygons come back with their geometry so overlaps can be tie-broken
// here: smallest distance from the point to the polygon centroid wins,
// then the lowest object id.
func (r *PostgresZoningRepository) FindContainingZone(ctx context.Context, lat, lng float64) (*model.SpatialQueryResult, error) {
	query := `
		SELECT ` + zoningColumns + `,
			ST_AsGeoJSON(z.shape_column) as geometry
		FROM zoning_data z
		WHERE ST_Contains(
			z.shape_column,
			ST_SetSRID(ST_MakePoint($2, $1), 4326)
		)
	`

	rows, err := r.client.DB.QueryContext(ctx, query, lat, lng)
	if err != nil {
		return nil, storeErr("containment query failed", err)
	}
	defer rows.Close()

	point := LatLngToPoint(lat, lng)

	type candidate struct {
		result           model.SpatialQueryResult
		centroidDistance float64
	}
	var candidates []candidate

	for rows.Next() {
		var zr zoningResult
		err := rows.Scan(&zr.ObjectID, &zr.ZoneName, &zr.ZoneCode, &zr.Phase,
			&zr.YearOfImplementation, &zr.AreaSqKm,
			&zr.Level1, &zr.Level2, &zr.Level3, &zr.GlobalID, &zr.GeometryJSON)
		if err != nil {
			return nil, storeErr("containment row scan failed", err)
		}

		geometry, err := DecodeGeometry(zr.GeometryJSON)
		if err != nil {
			return nil, fmt.Errorf("zone %d: %w", zr.ObjectID, err)
		}

		candidates = append(candidates, candidate{
			result: model.SpatialQueryResult{
				Feature:        zr.ToModel(),
				DistanceMeters: 0,
				AreaSqMeters:   GeometryAreaSqMeters(geometry),
				Source:         "exact_match",
			},
			centroidDistance: CentroidDistanceMeters(point, geometry),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("containment row iteration failed", err)
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].centroidDistance != candidates[j].centroidDistance {
			return candidates[i].centroidDistance < candidates[j].centroidDistance
		}
		return candidates[i].result.Feature.ObjectID < candidates[j].result.Feature.ObjectID
	})

	return &candidates[0].result, nil
}

// FindNearest returns polygons within maxDistanceMeters ordered by
// geodesic distance. This backs the advisory nearby operation only.
func (r *PostgresZoningRepository) FindNearest(ctx context.Context, lat, lng, maxDistanceMeters float64, limit int) ([]model.SpatialQueryResult, error) {
	query := `
		SELECT ` + zoningColumns + `,
			ST_Distance(
				z.shape_column::geography,
				ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
			) as distance_meters
		FROM zoning_data z
		WHERE ST_DWithin(
			z.shape_column::geography,
			ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography,
			$3
		)
		ORDER BY distance_meters, z.objectid_1
		LIMIT $4
	`

	rows, err := r.client.DB.QueryContext(ctx, query, lat, lng, maxDistanceMeters, limit)
	if err != nil {
		return nil, storeErr("nearby query failed", err)
	}
	defer rows.Close()

	var results []model.SpatialQueryResult
	for rows.Next() {
		var zr zoningResult
		err := rows.Scan(&zr.ObjectID, &zr.ZoneName, &zr.ZoneCode, &zr.Phase,
			&zr.YearOfImplementation, &zr.AreaSqKm,
			&zr.Level1, &zr.Level2, &zr.Level3, &zr.GlobalID, &zr.DistanceMeters)
		if err != nil {
			return nil, storeErr("nearby row scan failed", err)
		}

		result := model.SpatialQueryResult{
			Feature: zr.ToModel(),
			Source:  "nearby",
		}
		if zr.DistanceMeters.Valid {
			result.DistanceMeters = zr.DistanceMeters.Float64
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("nearby row iteration failed", err)
	}

	return results, nil
}

// GetZoneBoundaries returns zoning polygons with simplified geometry,
// optionally filtered by zone name and viewport bounds.
func (r *PostgresZoningRepository) GetZoneBoundaries(ctx context.Context, zoneNames []string, bounds *model.Bounds) ([]model.BoundaryFeature, error) {
	query := `
		SELECT z.new_zoning, z.zone_code, z.phase, z.level_1, z.level_2, z.area_sqkm,
			ST_AsGeoJSON(ST_Simplify(z.shape_column, 0.0001)) as geometry
		FROM zoning_data z
		WHERE ($1::text[] IS NULL OR z.new_zoning = ANY($1))
		AND ($2::float8 IS NULL OR ST_Intersects(
			z.shape_column,
			ST_MakeEnvelope($4, $3, $5, $2, 4326)
		))
		LIMIT 500
	`

	var namesArg interface{}
	if len(zoneNames) > 0 {
		namesArg = pq.Array(zoneNames)
	}

	var north, south, east, west interface{}
	if bounds != nil {
		north, south, east, west = bounds.North, bounds.South, bounds.East, bounds.West
	}

	rows, err := r.client.DB.QueryContext(ctx, query, namesArg, north, south, west, east)
	if err != nil {
		return nil, storeErr("boundaries query failed", err)
	}
	defer rows.Close()

	var features []model.BoundaryFeature
	for rows.Next() {
		var zr zoningResult
		err := rows.Scan(&zr.ZoneName, &zr.ZoneCode, &zr.Phase,
			&zr.Level1, &zr.Level2, &zr.AreaSqKm, &zr.GeometryJSON)
		if err != nil {
			return nil, storeErr("boundaries row scan failed", err)
		}

		geometry, err := DecodeGeometry(zr.GeometryJSON)
		if err != nil {
			return nil, fmt.Errorf("boundary geometry: %w", err)
		}

		feature := model.BoundaryFeature{
			ZoneName: zr.ZoneName,
			Geometry: GeometryToModel(geometry),
		}
		if zr.ZoneCode.Valid {
			feature.ZoneCode = &zr.ZoneCode.String
		}
		if zr.Phase.Valid {
			feature.Phase = &zr.Phase.String
		}
		if zr.Level1.Valid {
			feature.Level1 = &zr.Level1.String
		}
		if zr.Level2.Valid {
			feature.Level2 = &zr.Level2.String
		}
		if zr.AreaSqKm.Valid {
			feature.AreaSqKm = &zr.AreaSqKm.Float64
		}
		features = append(features, feature)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("boundaries row iteration failed", err)
	}

	return features, nil
}

// GetStats counts features and unique zones and lists the largest
// zones by feature count.
func (r *PostgresZoningRepository) GetStats(ctx context.Context) (*model.DatabaseStats, error) {
	stats := &model.DatabaseStats{}

	countQuery := `SELECT COUNT(*), COUNT(DISTINCT new_zoning) FROM zoning_data`
	if err := r.client.DB.QueryRowContext(ctx, countQuery).Scan(&stats.TotalFeatures, &stats.UniqueZones); err != nil {
		return nil, storeErr("stats count failed", err)
	}

	topQuery := `
		SELECT new_zoning, COUNT(*) as feature_count
		FROM zoning_data
		GROUP BY new_zoning
		ORDER BY feature_count DESC
		LIMIT 10
	`
	rows, err := r.client.DB.QueryContext(ctx, topQuery)
	if err != nil {
		return nil, storeErr("stats top-zones query failed", err)
	}
	defer rows.Close()

	for rows.Next() {
		var summary model.ZoneSummary
		if err := rows.Scan(&summary.ZoneName, &summary.FeatureCount); err != nil {
			return nil, storeErr("stats row scan failed", err)
		}
		stats.TopZones = append(stats.TopZones, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("stats row iteration failed", err)
	}

	return stats, nil
}
