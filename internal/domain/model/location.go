package model

// LatLng is the latitude-first coordinate pair used across the API surface.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry mirrors the GeoJSON representation returned by PostGIS
// (ST_AsGeoJSON). Coordinates are stored longitude-first; every
// conversion between this storage order and the API's lat-first order
// goes through the repository geo helper.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

// Bounds is a geographic bounding box as supplied by the boundaries endpoint.
type Bounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}
