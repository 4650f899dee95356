package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TerraNebular-Backend/internal/domain/knowledge"
	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/usecase"
)

// stubZoningUseCase serves canned results to exercise the HTTP layer.
type stubZoningUseCase struct {
	info    *model.LocationSpatialData
	infoErr error
	nearby  []model.SpatialQueryResult
}

func (s *stubZoningUseCase) GetZoningInfo(ctx context.Context, lat, lng float64) (*model.LocationSpatialData, error) {
	if s.infoErr != nil {
		return nil, s.infoErr
	}
	if s.info != nil {
		return s.info, nil
	}
	return &model.LocationSpatialData{
		Location:       model.LatLng{Lat: lat, Lng: lng},
		NearbyFeatures: []model.SpatialQueryResult{},
	}, nil
}

func (s *stubZoningUseCase) GetNearbyZones(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]model.SpatialQueryResult, error) {
	return s.nearby, nil
}

func (s *stubZoningUseCase) GetZoneRegulation(codeOrLabel string) *model.ZoneRegulation {
	return knowledge.Lookup(codeOrLabel)
}

func (s *stubZoningUseCase) ClassifyUse(codeOrLabel, useQuery string) model.UseClassification {
	return knowledge.ClassifyUse(codeOrLabel, useQuery)
}

func (s *stubZoningUseCase) ListZoneCodes() []string {
	return knowledge.Codes()
}

func (s *stubZoningUseCase) GetAllZones(ctx context.Context) ([]model.ZoneSummary, error) {
	return nil, nil
}

func (s *stubZoningUseCase) SearchZones(ctx context.Context, searchTerm string) ([]model.ZoneSummary, error) {
	return nil, nil
}

func (s *stubZoningUseCase) GetZonesByPhase(ctx context.Context, phase string) ([]model.PhaseSummary, error) {
	return nil, nil
}

func (s *stubZoningUseCase) GetBoundaries(ctx context.Context, zoneNames []string, bounds *model.Bounds) ([]model.BoundaryFeature, error) {
	return nil, nil
}

func (s *stubZoningUseCase) GetStats(ctx context.Context) (*model.DatabaseStats, error) {
	return nil, nil
}

var _ usecase.ZoningUseCase = (*stubZoningUseCase)(nil)

func setupZoningRouter(uc usecase.ZoningUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewZoningHandler(uc)
	r := gin.New()
	r.GET("/api/zoning/info", h.GetZoningInfo)
	r.GET("/api/zoning/nearby", h.GetNearbyZones)
	r.GET("/api/zoning/regulations", h.ListRegulations)
	r.GET("/api/zoning/regulations/:code", h.GetZoneRegulation)
	r.GET("/api/zoning/classify", h.ClassifyUse)
	return r
}

func doGet(r *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetZoningInfo_MissingParameters(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/info")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "missing_parameter", body["error"])
}

func TestGetZoningInfo_InvalidCoordinates(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/info?lat=abc&lng=30.06")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetZoningInfo_OutOfBounds(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	// Nairobi is outside Rwanda's envelope.
	w := doGet(r, "/api/zoning/info?lat=-1.2921&lng=36.8219")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "out_of_bounds", body["error"])
}

func TestGetZoningInfo_BoundsMatchServiceArea(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	// Edge of the Rwanda envelope is still in service.
	w := doGet(r, "/api/zoning/info?lat=-1.0&lng=28.0")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "/api/zoning/info?lat=-3.0&lng=31.0")
	assert.Equal(t, http.StatusOK, w.Code)

	// Just past the envelope is rejected.
	w = doGet(r, "/api/zoning/info?lat=-0.99&lng=30.0")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(r, "/api/zoning/info?lat=-1.95&lng=31.01")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetZoningInfo_NoCoverageReturnsNullZone(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/info?lat=-2.6&lng=29.2")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["zone_data"])
	assert.NotEmpty(t, body["message"])

	// nearby_features is present and an array, not null.
	nearby, ok := body["nearby_features"].([]interface{})
	assert.True(t, ok)
	assert.Empty(t, nearby)
}

func TestGetZoningInfo_StoreErrorStatuses(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{infoErr: model.ErrStoreTimeout})
	w := doGet(r, "/api/zoning/info?lat=-1.95&lng=30.06")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)

	r = setupZoningRouter(&stubZoningUseCase{infoErr: model.ErrStoreUnavailable})
	w = doGet(r, "/api/zoning/info?lat=-1.95&lng=30.06")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetNearbyZones_InvalidRadius(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/nearby?lat=-1.95&lng=30.06&radius=-5")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRegulations(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/regulations")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Kigali City Zoning Regulations", body["document"])
	codes, ok := body["codes"].([]interface{})
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(codes), 28)
}

func TestGetZoneRegulation_Known(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/regulations/C1")
	assert.Equal(t, http.StatusOK, w.Code)

	var reg model.ZoneRegulation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.Equal(t, "Mixed Use Zone", reg.FullName)
}

func TestGetZoneRegulation_Unknown(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/regulations/Z9")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unknown_zone", body["error"])
}

func TestClassifyUse_Endpoint(t *testing.T) {
	r := setupZoningRouter(&stubZoningUseCase{})

	w := doGet(r, "/api/zoning/classify?zone=R1&use=home+occupation")
	assert.Equal(t, http.StatusOK, w.Code)

	var result model.UseClassification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, model.UseStatusPermitted, result.Status)

	w = doGet(r, "/api/zoning/classify?zone=R1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
