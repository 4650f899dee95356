package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TerraNebular-Backend/internal/domain/knowledge"
	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/service"
)

type stubLocationService struct {
	data *model.LocationSpatialData
	err  error
}

func (s *stubLocationService) ResolveLocation(ctx context.Context, lat, lng float64) (*model.LocationSpatialData, error) {
	return s.data, s.err
}

func (s *stubLocationService) ResolveLocationWithNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) (*model.LocationSpatialData, error) {
	return s.data, s.err
}

type stubAnswerRepo struct {
	answer string
	err    error
}

func (s *stubAnswerRepo) GenerateAnswer(ctx context.Context, question string, spatialData *model.LocationSpatialData, language string) (string, error) {
	return s.answer, s.err
}

type stubCacheRepo struct {
	cached   *model.CachedAnswer
	getErr   error
	putCalls int
	putErr   error
}

func (s *stubCacheRepo) Get(ctx context.Context, fingerprint string) (*model.CachedAnswer, error) {
	return s.cached, s.getErr
}

func (s *stubCacheRepo) Put(ctx context.Context, fingerprint, question string, lat, lng float64, zoneName, response string, metadata model.ResponseMetadata) error {
	s.putCalls++
	return s.putErr
}

func (s *stubCacheRepo) SweepExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

type stubAnalyticsRepo struct {
	entries chan *model.AnalyticsEntry
}

func newStubAnalyticsRepo() *stubAnalyticsRepo {
	return &stubAnalyticsRepo{entries: make(chan *model.AnalyticsEntry, 4)}
}

func (s *stubAnalyticsRepo) LogQuestion(ctx context.Context, entry *model.AnalyticsEntry) error {
	s.entries <- entry
	return nil
}

func (s *stubAnalyticsRepo) waitForEntry(t *testing.T) *model.AnalyticsEntry {
	t.Helper()
	select {
	case entry := <-s.entries:
		return entry
	case <-time.After(2 * time.Second):
		t.Fatal("analytics entry was never logged")
		return nil
	}
}

func coveredSpatialData() *model.LocationSpatialData {
	zone := knowledge.Normalize("C1-Mixed use zone")
	return &model.LocationSpatialData{
		Location: model.LatLng{Lat: -1.9536, Lng: 30.0606},
		ZoneData: &model.ResolvedZone{
			SpatialQueryResult: model.SpatialQueryResult{
				Feature: model.ZoningFeature{ObjectID: 42, ZoneName: "C1-Mixed use zone"},
				Source:  "exact_match",
			},
			Zone:        zone,
			Regulation:  knowledge.Lookup(zone.Code),
			Development: knowledge.DevelopmentParams(zone.Code),
		},
	}
}

func askRequest() *model.AskRequest {
	return &model.AskRequest{
		Question: "Can I open a restaurant here?",
		Lat:      -1.9536,
		Lng:      30.0606,
		Language: "en",
	}
}

func newAskUseCaseForTest(loc service.LocationIntelligenceService, answer *stubAnswerRepo, cache *stubCacheRepo, analytics *stubAnalyticsRepo) AskUseCase {
	return NewAskUseCase(loc, answer, cache, analytics, "claude-sonnet-4-20250514")
}

func TestAsk_GeneratedAnswer(t *testing.T) {
	cache := &stubCacheRepo{}
	analytics := newStubAnalyticsRepo()
	uc := newAskUseCaseForTest(
		&stubLocationService{data: coveredSpatialData()},
		&stubAnswerRepo{answer: "YES, restaurants are permitted in C1."},
		cache,
		analytics,
	)

	result, err := uc.Ask(context.Background(), askRequest())
	require.NoError(t, err)

	assert.Equal(t, "YES, restaurants are permitted in C1.", result.Response)
	assert.Equal(t, "C1-Mixed use zone", result.ZoneName)
	assert.False(t, result.Cached)
	assert.False(t, result.Metadata.Fallback)
	assert.True(t, result.Metadata.Authoritative)
	assert.True(t, result.Metadata.SpatialContext)
	assert.Equal(t, "C1", result.Metadata.ZoneCode)
	assert.Equal(t, 1, cache.putCalls)

	entry := analytics.waitForEntry(t)
	assert.Equal(t, "generated", entry.ResponseType)
	assert.NotEmpty(t, entry.SessionID)
}

func TestAsk_CacheHit(t *testing.T) {
	cache := &stubCacheRepo{
		cached: &model.CachedAnswer{
			Response: "cached answer",
			Metadata: model.ResponseMetadata{Language: "en"},
		},
	}
	analytics := newStubAnalyticsRepo()
	uc := newAskUseCaseForTest(
		&stubLocationService{data: coveredSpatialData()},
		&stubAnswerRepo{err: errors.New("should not be called")},
		cache,
		analytics,
	)

	result, err := uc.Ask(context.Background(), askRequest())
	require.NoError(t, err)

	assert.True(t, result.Cached)
	assert.Equal(t, "cached answer", result.Response)
	assert.Zero(t, cache.putCalls)

	entry := analytics.waitForEntry(t)
	assert.Equal(t, "cached", entry.ResponseType)
}

func TestAsk_CacheFailureIsAMiss(t *testing.T) {
	cache := &stubCacheRepo{getErr: model.ErrStoreUnavailable}
	analytics := newStubAnalyticsRepo()
	uc := newAskUseCaseForTest(
		&stubLocationService{data: coveredSpatialData()},
		&stubAnswerRepo{answer: "generated despite cache outage"},
		cache,
		analytics,
	)

	result, err := uc.Ask(context.Background(), askRequest())
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, "generated despite cache outage", result.Response)
}

func TestAsk_FallbackOnGenerationFailure(t *testing.T) {
	cache := &stubCacheRepo{}
	analytics := newStubAnalyticsRepo()
	uc := newAskUseCaseForTest(
		&stubLocationService{data: coveredSpatialData()},
		&stubAnswerRepo{err: errors.New("API call error (status: 529)")},
		cache,
		analytics,
	)

	result, err := uc.Ask(context.Background(), askRequest())
	require.NoError(t, err)

	assert.True(t, result.Metadata.Fallback)
	assert.NotEmpty(t, result.Metadata.Error)
	// The fallback still carries the real zone parameters.
	assert.Contains(t, result.Response, "Mixed Use Zone")
	assert.Contains(t, result.Response, "1.6")
	// Fallback answers are never cached.
	assert.Zero(t, cache.putCalls)

	entry := analytics.waitForEntry(t)
	assert.Equal(t, "fallback", entry.ResponseType)
}

func TestAsk_NoCoverage(t *testing.T) {
	analytics := newStubAnalyticsRepo()
	uc := newAskUseCaseForTest(
		&stubLocationService{data: &model.LocationSpatialData{
			Location: model.LatLng{Lat: -2.6, Lng: 29.2},
		}},
		&stubAnswerRepo{err: errors.New("should not be called")},
		&stubCacheRepo{},
		analytics,
	)

	req := askRequest()
	req.Lat, req.Lng = -2.6, 29.2
	result, err := uc.Ask(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, result.ZoneName)
	assert.Equal(t, "no_zoning_data", result.Metadata.Error)
	assert.True(t, strings.Contains(result.Response, "No zoning data found"))

	entry := analytics.waitForEntry(t)
	assert.Equal(t, "no_coverage", entry.ResponseType)
}

func TestAsk_ResolutionFailurePropagates(t *testing.T) {
	uc := newAskUseCaseForTest(
		&stubLocationService{err: model.ErrStoreTimeout},
		&stubAnswerRepo{},
		&stubCacheRepo{},
		newStubAnalyticsRepo(),
	)

	_, err := uc.Ask(context.Background(), askRequest())
	assert.ErrorIs(t, err, model.ErrStoreTimeout)
}

func TestAsk_DefaultsLanguage(t *testing.T) {
	analytics := newStubAnalyticsRepo()
	cache := &stubCacheRepo{}
	uc := newAskUseCaseForTest(
		&stubLocationService{data: coveredSpatialData()},
		&stubAnswerRepo{answer: "answer"},
		cache,
		analytics,
	)

	req := askRequest()
	req.Language = ""
	result, err := uc.Ask(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "en", result.Metadata.Language)
}
