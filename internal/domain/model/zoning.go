package model

// ZoningFeature is one row of the zoning_data table as maintained by the
// bulk loader. Labels are heterogeneous source strings; the core never
// writes this table.
type ZoningFeature struct {
	ObjectID             int      `json:"objectid" db:"objectid_1"`
	ZoneName             string   `json:"zone_name" db:"new_zoning"`
	ZoneCode             *string  `json:"zone_code,omitempty" db:"zone_code"`
	Phase                *string  `json:"phase,omitempty" db:"phase"`
	YearOfImplementation *string  `json:"year_of_implementation,omitempty" db:"year_of_implementation"`
	AreaSqKm             *float64 `json:"area_sqkm,omitempty" db:"area_sqkm"`
	Level1               *string  `json:"level_1,omitempty" db:"level_1"`
	Level2               *string  `json:"level_2,omitempty" db:"level_2"`
	Level3               *string  `json:"level_3,omitempty" db:"level_3"`
	GlobalID             *string  `json:"globalid,omitempty" db:"globalid"`
}

// SpatialQueryResult is what the spatial resolver returns for a single
// polygon. DistanceMeters is 0 for exact containment; positive values
// only ever come from the nearby search, never from the primary lookup.
type SpatialQueryResult struct {
	Feature        ZoningFeature `json:"feature"`
	DistanceMeters float64       `json:"distance_meters"`
	AreaSqMeters   float64       `json:"area_sq_meters"`
	Source         string        `json:"source"` // "exact_match" or "nearby"
}

// NormalizedZone is the outcome of label normalization. Known is false
// when the raw label could not be mapped to a knowledge-base code; in
// that case Code carries the raw label unchanged and regulatory lookups
// against it return nothing.
type NormalizedZone struct {
	Code  string `json:"code"`
	Raw   string `json:"raw"`
	Known bool   `json:"known"`
}

// LocationSpatialData is the assembled regulatory context for one
// coordinate. ZoneData == nil means the point is outside every mapped
// zone ("no coverage") and is an expected outcome, not an error.
type LocationSpatialData struct {
	Location       LatLng               `json:"location"`
	ZoneData       *ResolvedZone        `json:"zone_data"`
	NearbyFeatures []SpatialQueryResult `json:"nearby_features"`
}

// ResolvedZone enriches a spatial hit with the knowledge-base view of
// the zone. Regulation and Development stay nil when the label did not
// normalize to a known code (degraded, not fatal).
type ResolvedZone struct {
	SpatialQueryResult
	Zone        NormalizedZone     `json:"zone"`
	Regulation  *ZoneRegulation    `json:"regulation,omitempty"`
	Development *DevelopmentParams `json:"development,omitempty"`
}

// ZoneSummary is one row of the zone catalog (grouped by label/phase).
type ZoneSummary struct {
	ZoneName     string  `json:"zone_name"`
	ZoneCode     *string `json:"zone_code,omitempty"`
	Phase        *string `json:"phase,omitempty"`
	Level1       *string `json:"level_1,omitempty"`
	Level2       *string `json:"level_2,omitempty"`
	FeatureCount int     `json:"feature_count"`
}

// PhaseSummary aggregates zoning features by master-plan phase.
type PhaseSummary struct {
	Phase                *string  `json:"phase,omitempty"`
	YearOfImplementation *string  `json:"year_of_implementation,omitempty"`
	ZoneName             string   `json:"zone_name"`
	FeatureCount         int      `json:"feature_count"`
	TotalAreaSqKm        *float64 `json:"total_area,omitempty"`
}

// BoundaryFeature is one zoning polygon with its geometry, served as
// a GeoJSON feature by the boundaries endpoint.
type BoundaryFeature struct {
	ZoneName string   `json:"zone_name"`
	ZoneCode *string  `json:"zone_code,omitempty"`
	Phase    *string  `json:"phase,omitempty"`
	Level1   *string  `json:"level_1,omitempty"`
	Level2   *string  `json:"level_2,omitempty"`
	AreaSqKm *float64 `json:"area_sqkm,omitempty"`
	Geometry Geometry `json:"geometry"`
}

// DatabaseStats reports the geometry store contents.
type DatabaseStats struct {
	TotalFeatures int           `json:"total_features"`
	UniqueZones   int           `json:"unique_zones"`
	TopZones      []ZoneSummary `json:"top_zones"`
}
