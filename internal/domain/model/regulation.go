package model

// ZoneRegulation is one entry of the static zoning knowledge base,
// ported from the Kigali City Zoning Regulations (August 28, 2020).
// Entries are read-only at runtime; optional attributes are pointers
// because presence varies between zones in the source document.
type ZoneRegulation struct {
	Code        string `json:"code"`
	FullName    string `json:"full_name"`
	Article     string `json:"article"`
	Table       string `json:"table"`
	Description string `json:"description"`

	Uses        *ZoneUses        `json:"uses,omitempty"`
	Development *ZoneDevelopment `json:"development,omitempty"`
	Building    *ZoneBuilding    `json:"building,omitempty"`

	DevelopmentStrategy []string     `json:"development_strategy,omitempty"`
	Signage             *ZoneSignage `json:"signage,omitempty"`
	Restrictions        string       `json:"restrictions,omitempty"`
}

// ZoneUses holds the three disjoint permission sets plus ancillary
// uses. Matching against them is done by the knowledge base with a
// fixed resolution order (permitted, then conditional, then
// prohibited).
type ZoneUses struct {
	Permitted   []string `json:"permitted,omitempty"`
	Conditional []string `json:"conditional,omitempty"`
	Prohibited  []string `json:"prohibited,omitempty"`
	Ancillary   []string `json:"ancillary,omitempty"`
}

// ZoneDevelopment is the development envelope of a zone.
type ZoneDevelopment struct {
	LotSize  *LotSize      `json:"lot_size,omitempty"`
	Coverage *Coverage     `json:"coverage,omitempty"`
	FAR      *FloorAreaMax `json:"far,omitempty"`
	Density  *Density      `json:"density,omitempty"`
}

// LotSize bounds are free text in the regulations ("500 m²",
// "1 hectare for agricultural use") and stay opaque labels.
type LotSize struct {
	Min          string `json:"min,omitempty"`
	Max          string `json:"max,omitempty"`
	SingleFamily string `json:"single_family,omitempty"`
	RowHousing   string `json:"row_housing,omitempty"`
	MultiFamily  string `json:"multi_family,omitempty"`
	Note         string `json:"note,omitempty"`
	Exception    string `json:"exception,omitempty"`
}

type Coverage struct {
	MaxBuilding     string `json:"max_building,omitempty"`
	MinLandscaping  string `json:"min_landscaping,omitempty"`
	MinGreenSpace   string `json:"min_green_space,omitempty"`
}

type FloorAreaMax struct {
	Max float64 `json:"max"`
}

// Density in dwelling units per hectare, free text ranges as published.
type Density struct {
	SingleUse string `json:"single_use,omitempty"`
	MixedUse  string `json:"mixed_use,omitempty"`
}

// ZoneBuilding carries building-form limits. MaxFloors is an opaque
// code like "G+2" or "G+1+P"; extra-floor allowances live in the text.
type ZoneBuilding struct {
	MaxFloors          string    `json:"max_floors,omitempty"`
	AncillaryMaxFloors string    `json:"ancillary_max_floors,omitempty"`
	FloorToFloorHeight string    `json:"floor_to_floor_height,omitempty"`
	Roof               *ZoneRoof `json:"roof,omitempty"`
	Form               []string  `json:"form,omitempty"`
}

type ZoneRoof struct {
	MaxPitch     string `json:"max_pitch,omitempty"`
	Restrictions string `json:"restrictions,omitempty"`
}

type ZoneSignage struct {
	Permitted  string   `json:"permitted,omitempty"`
	MaxSize    string   `json:"max_size,omitempty"`
	Prohibited []string `json:"prohibited,omitempty"`
}

// DevelopmentParams is the flattened subset of a regulation served to
// the API and the prompt builder.
type DevelopmentParams struct {
	ZoneName     string        `json:"zone_name"`
	Code         string        `json:"code"`
	Article      string        `json:"article"`
	Table        string        `json:"table"`
	LotSize      *LotSize      `json:"lot_size,omitempty"`
	Coverage     *Coverage     `json:"coverage,omitempty"`
	FAR          *FloorAreaMax `json:"far,omitempty"`
	Density      *Density      `json:"density,omitempty"`
	MaxFloors    string        `json:"max_floors,omitempty"`
	BuildingForm []string      `json:"building_form,omitempty"`
}

// UseStatus is the outcome of classifying a use query against a zone.
type UseStatus string

const (
	UseStatusPermitted   UseStatus = "permitted"
	UseStatusConditional UseStatus = "conditional"
	UseStatusProhibited  UseStatus = "prohibited"
	UseStatusUnspecified UseStatus = "unspecified"
	UseStatusUnknownZone UseStatus = "unknown_zone"
)

// UseClassification reports how a use query resolved. MatchedEntry is
// the knowledge-base use string that matched; Authority is set for
// conditional uses.
type UseClassification struct {
	Status       UseStatus `json:"status"`
	MatchedEntry string    `json:"matched_entry,omitempty"`
	ZoneName     string    `json:"zone_name,omitempty"`
	Article      string    `json:"article,omitempty"`
	Authority    string    `json:"authority,omitempty"`
}
