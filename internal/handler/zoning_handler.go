package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"TerraNebular-Backend/internal/domain/knowledge"
	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/repository"
	"TerraNebular-Backend/internal/usecase"
)

const (
	defaultNearbyRadiusMeters = 1000
	maxNearbyRadiusMeters     = 10000
	defaultNearbyLimit        = 10
	maxNearbyLimit            = 50
)

// ZoningHandler serves the regulatory lookup endpoints.
type ZoningHandler struct {
	zoningUseCase usecase.ZoningUseCase
}

func NewZoningHandler(zoningUseCase usecase.ZoningUseCase) *ZoningHandler {
	return &ZoningHandler{
		zoningUseCase: zoningUseCase,
	}
}

// parseCoordinates reads and validates lat/lng query parameters.
func parseCoordinates(c *gin.Context) (float64, float64, bool) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "lat and lng query parameters are required",
		})
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lat value",
		})
		return 0, 0, false
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Invalid lng value",
		})
		return 0, 0, false
	}

	// Requests outside Rwanda's envelope are rejected before any
	// store round trip.
	if !repository.WithinServiceArea(lat, lng) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "out_of_bounds",
			"message": "Coordinates must be within Rwanda (lat -3..-1, lng 28..31)",
		})
		return 0, 0, false
	}

	return lat, lng, true
}

// respondStoreError maps store failures to gateway-style statuses so
// clients can distinguish an outage from a bad request.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrStoreTimeout):
		c.JSON(http.StatusGatewayTimeout, gin.H{
			"error":   "store_timeout",
			"message": "Spatial store did not respond in time",
		})
	case errors.Is(err, model.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "store_unavailable",
			"message": "Spatial store is unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
	}
}

// GetZoningInfo GET /api/zoning/info - resolve a coordinate to its zone
func (h *ZoningHandler) GetZoningInfo(c *gin.Context) {
	lat, lng, ok := parseCoordinates(c)
	if !ok {
		return
	}

	data, err := h.zoningUseCase.GetZoningInfo(c.Request.Context(), lat, lng)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	if data.ZoneData == nil {
		// No coverage is a successful lookup with a null zone.
		c.JSON(http.StatusOK, gin.H{
			"location":        data.Location,
			"zone_data":       nil,
			"nearby_features": data.NearbyFeatures,
			"message":         "No zoning data found for this location",
		})
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetNearbyZones GET /api/zoning/nearby - zones within a radius
func (h *ZoningHandler) GetNearbyZones(c *gin.Context) {
	lat, lng, ok := parseCoordinates(c)
	if !ok {
		return
	}

	radius := float64(defaultNearbyRadiusMeters)
	if radiusStr := c.Query("radius"); radiusStr != "" {
		parsed, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid radius value",
			})
			return
		}
		radius = parsed
	}
	if radius > maxNearbyRadiusMeters {
		radius = maxNearbyRadiusMeters
	}

	limit := defaultNearbyLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "Invalid limit value",
			})
			return
		}
		limit = parsed
	}
	if limit > maxNearbyLimit {
		limit = maxNearbyLimit
	}

	results, err := h.zoningUseCase.GetNearbyZones(c.Request.Context(), lat, lng, radius, limit)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location":      model.LatLng{Lat: lat, Lng: lng},
		"radius_meters": radius,
		"count":         len(results),
		"zones":         results,
	})
}

// ListRegulations GET /api/zoning/regulations - knowledge base index
func (h *ZoningHandler) ListRegulations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"document":       knowledge.Metadata.DocumentTitle,
		"effective_date": knowledge.Metadata.EffectiveDate,
		"authority":      knowledge.Metadata.Authority,
		"legal_basis":    knowledge.Metadata.LegalBasis,
		"codes":          h.zoningUseCase.ListZoneCodes(),
	})
}

// GetZoneRegulation GET /api/zoning/regulations/:code
func (h *ZoningHandler) GetZoneRegulation(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Zone code is required",
		})
		return
	}

	regulation := h.zoningUseCase.GetZoneRegulation(code)
	if regulation == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "unknown_zone",
			"message": "No regulation found for zone " + code,
			"codes":   h.zoningUseCase.ListZoneCodes(),
		})
		return
	}

	c.JSON(http.StatusOK, regulation)
}

// ClassifyUse GET /api/zoning/classify - evaluate a proposed use
func (h *ZoningHandler) ClassifyUse(c *gin.Context) {
	zone := c.Query("zone")
	use := c.Query("use")
	if zone == "" || use == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "zone and use query parameters are required",
		})
		return
	}

	c.JSON(http.StatusOK, h.zoningUseCase.ClassifyUse(zone, use))
}

// GetAllZones GET /api/zones
func (h *ZoningHandler) GetAllZones(c *gin.Context) {
	zones, err := h.zoningUseCase.GetAllZones(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(zones),
		"zones": zones,
	})
}

// SearchZones GET /api/zones/search?q=
func (h *ZoningHandler) SearchZones(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "q query parameter is required",
		})
		return
	}

	zones, err := h.zoningUseCase.SearchZones(c.Request.Context(), query)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query": query,
		"count": len(zones),
		"zones": zones,
	})
}

// GetZonesByPhase GET /api/zones/phase/:phase
func (h *ZoningHandler) GetZonesByPhase(c *gin.Context) {
	phase := c.Param("phase")
	if phase == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "Phase is required",
		})
		return
	}

	summaries, err := h.zoningUseCase.GetZonesByPhase(c.Request.Context(), phase)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phase": phase,
		"count": len(summaries),
		"zones": summaries,
	})
}

// GetBoundaries GET /api/zoning/boundaries
func (h *ZoningHandler) GetBoundaries(c *gin.Context) {
	var zoneNames []string
	if zonesParam := c.Query("zones"); zonesParam != "" {
		for _, name := range strings.Split(zonesParam, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				zoneNames = append(zoneNames, trimmed)
			}
		}
	}

	var bounds *model.Bounds
	if c.Query("north") != "" {
		parsed, err := parseBounds(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": err.Error(),
			})
			return
		}
		bounds = parsed
	}

	features, err := h.zoningUseCase.GetBoundaries(c.Request.Context(), zoneNames, bounds)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(features),
		"features": features,
	})
}

func parseBounds(c *gin.Context) (*model.Bounds, error) {
	bounds := &model.Bounds{}
	for _, item := range []struct {
		name string
		dest *float64
	}{
		{"north", &bounds.North},
		{"south", &bounds.South},
		{"east", &bounds.East},
		{"west", &bounds.West},
	} {
		value, err := strconv.ParseFloat(c.Query(item.name), 64)
		if err != nil {
			return nil, errors.New("Invalid " + item.name + " value")
		}
		*item.dest = value
	}
	return bounds, nil
}

// GetStats GET /api/zoning/stats
func (h *ZoningHandler) GetStats(c *gin.Context) {
	stats, err := h.zoningUseCase.GetStats(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
