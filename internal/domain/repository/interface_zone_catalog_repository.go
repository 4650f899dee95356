package repository

import (
	"context"

	"TerraNebular-Backend/internal/domain/model"
)

// ZoneCatalogRepository serves the non-spatial zone catalog reads
// (summaries, search, phases) used by the advisory endpoints.
type ZoneCatalogRepository interface {
	GetAllZones(ctx context.Context) ([]model.ZoneSummary, error)
	SearchZones(ctx context.Context, searchTerm string) ([]model.ZoneSummary, error)
	GetZonesByPhase(ctx context.Context, phase string) ([]model.PhaseSummary, error)
}
