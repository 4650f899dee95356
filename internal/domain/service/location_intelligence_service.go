package service

import (
	"context"
	"fmt"
	"log"

	"TerraNebular-Backend/internal/domain/knowledge"
	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
)

// LocationIntelligenceService assembles the full regulatory context
// for a coordinate: spatial resolution, label normalization and the
// knowledge-base merge.
type LocationIntelligenceService interface {
	// ResolveLocation returns the assembled context for a point.
	// ZoneData is nil when the point is outside every mapped zone;
	// that outcome is not an error.
	ResolveLocation(ctx context.Context, lat, lng float64) (*model.LocationSpatialData, error)

	// ResolveLocationWithNearby additionally attaches the closest
	// zones within the given radius for advisory context.
	ResolveLocationWithNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) (*model.LocationSpatialData, error)
}

type locationIntelligenceServiceImpl struct {
	zoningRepo repository.ZoningRepository
}

func NewLocationIntelligenceService(zoningRepo repository.ZoningRepository) LocationIntelligenceService {
	return &locationIntelligenceServiceImpl{
		zoningRepo: zoningRepo,
	}
}

func (s *locationIntelligenceServiceImpl) ResolveLocation(ctx context.Context, lat, lng float64) (*model.LocationSpatialData, error) {
	hit, err := s.zoningRepo.FindContainingZone(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("spatial resolution failed: %w", err)
	}

	// NearbyFeatures starts as an empty slice so the wire shape is
	// always an array, never null.
	data := &model.LocationSpatialData{
		Location:       model.LatLng{Lat: lat, Lng: lng},
		NearbyFeatures: []model.SpatialQueryResult{},
	}

	if hit == nil {
		log.Printf("📍 No zone coverage at %.6f, %.6f", lat, lng)
		return data, nil
	}

	data.ZoneData = resolveZone(hit)
	return data, nil
}

func (s *locationIntelligenceServiceImpl) ResolveLocationWithNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) (*model.LocationSpatialData, error) {
	data, err := s.ResolveLocation(ctx, lat, lng)
	if err != nil {
		return nil, err
	}

	nearby, err := s.zoningRepo.FindNearest(ctx, lat, lng, radiusMeters, limit)
	if err != nil {
		// Nearby context is advisory; the containment answer stands
		// on its own.
		log.Printf("⚠️ Nearby zone lookup failed: %v", err)
		return data, nil
	}

	// The containing zone itself shows up at distance 0; keep only
	// genuinely neighboring polygons.
	for _, n := range nearby {
		if data.ZoneData != nil && n.Feature.ObjectID == data.ZoneData.Feature.ObjectID {
			continue
		}
		data.NearbyFeatures = append(data.NearbyFeatures, n)
	}

	return data, nil
}

// resolveZone merges a spatial hit with the knowledge-base view of its
// label. An unrecognized label degrades to spatial data only.
func resolveZone(hit *model.SpatialQueryResult) *model.ResolvedZone {
	zone := knowledge.Normalize(hit.Feature.ZoneName)

	resolved := &model.ResolvedZone{
		SpatialQueryResult: *hit,
		Zone:               zone,
	}

	if !zone.Known {
		log.Printf("⚠️ Zone label %q did not normalize to a known code", hit.Feature.ZoneName)
		return resolved
	}

	resolved.Regulation = knowledge.Lookup(zone.Code)
	resolved.Development = knowledge.DevelopmentParams(zone.Code)
	return resolved
}
