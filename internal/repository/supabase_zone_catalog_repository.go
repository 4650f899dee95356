package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"TerraNebular-Backend/internal/database"
	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
)

// SupabaseZoneCatalogRepository serves the non-spatial catalog reads
// through PostgREST. Spatial predicates stay on the direct PostGIS
// connection; this client only ever selects attribute columns.
type SupabaseZoneCatalogRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseZoneCatalogRepository(client *database.SupabaseClient) repository.ZoneCatalogRepository {
	return &SupabaseZoneCatalogRepository{
		client: client,
	}
}

// catalogRow is the attribute subset of zoning_data the catalog reads.
type catalogRow struct {
	ZoneName             string   `json:"new_zoning"`
	ZoneCode             *string  `json:"zone_code"`
	Phase                *string  `json:"phase"`
	YearOfImplementation *string  `json:"year_of_implementation"`
	AreaSqKm             *float64 `json:"area_sqkm"`
	Level1               *string  `json:"level_1"`
	Level2               *string  `json:"level_2"`
}

const catalogColumns = "new_zoning, zone_code, phase, year_of_implementation, area_sqkm, level_1, level_2"

func (r *SupabaseZoneCatalogRepository) fetchRows(builderErr string, data []byte) ([]catalogRow, error) {
	var rows []catalogRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal catalog rows: %w", builderErr, err)
	}
	return rows, nil
}

// GetAllZones groups every feature by zone label and phase.
// PostgREST cannot aggregate, so grouping happens client-side.
func (r *SupabaseZoneCatalogRepository) GetAllZones(ctx context.Context) ([]model.ZoneSummary, error) {
	data, count, err := r.client.GetClient().From("zoning_data").
		Select(catalogColumns, "exact", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch zone catalog: %w", err)
	}
	_ = count

	rows, err := r.fetchRows("zone catalog", data)
	if err != nil {
		return nil, err
	}

	return groupZoneSummaries(rows), nil
}

// SearchZones matches the zone label case-insensitively.
func (r *SupabaseZoneCatalogRepository) SearchZones(ctx context.Context, searchTerm string) ([]model.ZoneSummary, error) {
	data, count, err := r.client.GetClient().From("zoning_data").
		Select(catalogColumns, "exact", false).
		Ilike("new_zoning", "%"+searchTerm+"%").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to search zones for %q: %w", searchTerm, err)
	}
	_ = count

	rows, err := r.fetchRows("zone search", data)
	if err != nil {
		return nil, err
	}

	return groupZoneSummaries(rows), nil
}

// GetZonesByPhase aggregates zone labels and total area within one
// master-plan phase.
func (r *SupabaseZoneCatalogRepository) GetZonesByPhase(ctx context.Context, phase string) ([]model.PhaseSummary, error) {
	data, count, err := r.client.GetClient().From("zoning_data").
		Select(catalogColumns, "exact", false).
		Eq("phase", phase).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch phase %q: %w", phase, err)
	}
	_ = count

	rows, err := r.fetchRows("phase catalog", data)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*model.PhaseSummary)
	for i := range rows {
		row := &rows[i]
		summary, ok := grouped[row.ZoneName]
		if !ok {
			summary = &model.PhaseSummary{
				Phase:                row.Phase,
				YearOfImplementation: row.YearOfImplementation,
				ZoneName:             row.ZoneName,
			}
			grouped[row.ZoneName] = summary
		}
		summary.FeatureCount++
		if row.AreaSqKm != nil {
			if summary.TotalAreaSqKm == nil {
				total := 0.0
				summary.TotalAreaSqKm = &total
			}
			*summary.TotalAreaSqKm += *row.AreaSqKm
		}
	}

	summaries := make([]model.PhaseSummary, 0, len(grouped))
	for _, s := range grouped {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].FeatureCount > summaries[j].FeatureCount
	})

	return summaries, nil
}

func groupZoneSummaries(rows []catalogRow) []model.ZoneSummary {
	type key struct {
		name  string
		phase string
	}
	grouped := make(map[key]*model.ZoneSummary)
	for i := range rows {
		row := &rows[i]
		k := key{name: row.ZoneName}
		if row.Phase != nil {
			k.phase = *row.Phase
		}
		summary, ok := grouped[k]
		if !ok {
			summary = &model.ZoneSummary{
				ZoneName: row.ZoneName,
				ZoneCode: row.ZoneCode,
				Phase:    row.Phase,
				Level1:   row.Level1,
				Level2:   row.Level2,
			}
			grouped[k] = summary
		}
		summary.FeatureCount++
	}

	summaries := make([]model.ZoneSummary, 0, len(grouped))
	for _, s := range grouped {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].ZoneName != summaries[j].ZoneName {
			return summaries[i].ZoneName < summaries[j].ZoneName
		}
		return summaries[i].FeatureCount > summaries[j].FeatureCount
	})

	return summaries
}
