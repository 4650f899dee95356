package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"TerraNebular-Backend/internal/domain/knowledge"
	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
	"TerraNebular-Backend/internal/domain/service"
)

// storeTimeout bounds every geometry-store round trip so a stalled
// connection surfaces as ErrStoreTimeout instead of hanging the
// request.
const storeTimeout = 10 * time.Second

type ZoningUseCase interface {
	// GetZoningInfo resolves a coordinate to its zone and regulation.
	// ZoneData is nil in the result when the point has no coverage.
	GetZoningInfo(ctx context.Context, lat, lng float64) (*model.LocationSpatialData, error)

	// GetNearbyZones lists zones within radiusMeters of the point.
	GetNearbyZones(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]model.SpatialQueryResult, error)

	// GetZoneRegulation returns the knowledge-base entry for a code or
	// label, or nil when unknown.
	GetZoneRegulation(codeOrLabel string) *model.ZoneRegulation

	// ClassifyUse evaluates a proposed use against a zone's use lists.
	ClassifyUse(codeOrLabel, useQuery string) model.UseClassification

	// ListZoneCodes enumerates the knowledge-base codes.
	ListZoneCodes() []string

	GetAllZones(ctx context.Context) ([]model.ZoneSummary, error)
	SearchZones(ctx context.Context, searchTerm string) ([]model.ZoneSummary, error)
	GetZonesByPhase(ctx context.Context, phase string) ([]model.PhaseSummary, error)

	GetBoundaries(ctx context.Context, zoneNames []string, bounds *model.Bounds) ([]model.BoundaryFeature, error)
	GetStats(ctx context.Context) (*model.DatabaseStats, error)
}

type zoningUseCaseImpl struct {
	locationService service.LocationIntelligenceService
	zoningRepo      repository.ZoningRepository
	catalogRepo     repository.ZoneCatalogRepository
}

func NewZoningUseCase(
	locationService service.LocationIntelligenceService,
	zoningRepo repository.ZoningRepository,
	catalogRepo repository.ZoneCatalogRepository,
) ZoningUseCase {
	return &zoningUseCaseImpl{
		locationService: locationService,
		zoningRepo:      zoningRepo,
		catalogRepo:     catalogRepo,
	}
}

func (u *zoningUseCaseImpl) GetZoningInfo(ctx context.Context, lat, lng float64) (*model.LocationSpatialData, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	log.Printf("📍 Resolving zoning info for %.6f, %.6f", lat, lng)

	data, err := u.locationService.ResolveLocation(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}
	return data, nil
}

func (u *zoningUseCaseImpl) GetNearbyZones(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]model.SpatialQueryResult, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	results, err := u.zoningRepo.FindNearest(ctx, lat, lng, radiusMeters, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby zones: %w", err)
	}
	return results, nil
}

func (u *zoningUseCaseImpl) GetZoneRegulation(codeOrLabel string) *model.ZoneRegulation {
	return knowledge.Lookup(codeOrLabel)
}

func (u *zoningUseCaseImpl) ClassifyUse(codeOrLabel, useQuery string) model.UseClassification {
	return knowledge.ClassifyUse(codeOrLabel, useQuery)
}

func (u *zoningUseCaseImpl) ListZoneCodes() []string {
	return knowledge.Codes()
}

func (u *zoningUseCaseImpl) GetAllZones(ctx context.Context) ([]model.ZoneSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	zones, err := u.catalogRepo.GetAllZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

func (u *zoningUseCaseImpl) SearchZones(ctx context.Context, searchTerm string) ([]model.ZoneSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	zones, err := u.catalogRepo.SearchZones(ctx, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to search zones: %w", err)
	}
	return zones, nil
}

func (u *zoningUseCaseImpl) GetZonesByPhase(ctx context.Context, phase string) ([]model.PhaseSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	summaries, err := u.catalogRepo.GetZonesByPhase(ctx, phase)
	if err != nil {
		return nil, fmt.Errorf("failed to list phase zones: %w", err)
	}
	return summaries, nil
}

func (u *zoningUseCaseImpl) GetBoundaries(ctx context.Context, zoneNames []string, bounds *model.Bounds) ([]model.BoundaryFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	features, err := u.zoningRepo.GetZoneBoundaries(ctx, zoneNames, bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boundaries: %w", err)
	}
	return features, nil
}

func (u *zoningUseCaseImpl) GetStats(ctx context.Context) (*model.DatabaseStats, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	stats, err := u.zoningRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	return stats, nil
}
