package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
	"TerraNebular-Backend/internal/domain/service"
	"TerraNebular-Backend/internal/infrastructure/ai"
)

// nearby context attached to every AI question.
const (
	askNearbyRadiusMeters = 2000
	askNearbyLimit        = 5
)

type AskUseCase interface {
	// Ask answers a citizen's question about a location. The response
	// is served from cache when possible and degrades to an offline
	// regulatory summary when the collaborator fails.
	Ask(ctx context.Context, req *model.AskRequest) (*model.AskResult, error)

	// SweepCache removes expired cached answers.
	SweepCache(ctx context.Context) (int64, error)
}

type askUseCaseImpl struct {
	locationService service.LocationIntelligenceService
	answerRepo      repository.AnswerGenerationRepository
	cacheRepo       repository.AnswerCacheRepository
	analyticsRepo   repository.AnalyticsRepository
	modelName       string
}

func NewAskUseCase(
	locationService service.LocationIntelligenceService,
	answerRepo repository.AnswerGenerationRepository,
	cacheRepo repository.AnswerCacheRepository,
	analyticsRepo repository.AnalyticsRepository,
	modelName string,
) AskUseCase {
	return &askUseCaseImpl{
		locationService: locationService,
		answerRepo:      answerRepo,
		cacheRepo:       cacheRepo,
		analyticsRepo:   analyticsRepo,
		modelName:       modelName,
	}
}

func (u *askUseCaseImpl) Ask(ctx context.Context, req *model.AskRequest) (*model.AskResult, error) {
	language := req.Language
	if language == "" {
		language = "en"
	}

	log.Printf("🚀 Question received (%.4f, %.4f, lang: %s): %q", req.Lat, req.Lng, language, req.Question)

	storeCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	spatialData, err := u.locationService.ResolveLocationWithNearby(storeCtx, req.Lat, req.Lng, askNearbyRadiusMeters, askNearbyLimit)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location for question: %w", err)
	}

	// Outside every mapped zone the service explains the coverage gap
	// instead of speculating; the collaborator is never called here.
	if spatialData.ZoneData == nil {
		result := &model.AskResult{
			Response: ai.NoCoverageAnswer(req.Lat, req.Lng),
			Metadata: model.ResponseMetadata{
				Language: language,
				Error:    "no_zoning_data",
			},
		}
		u.logAnalytics(req, "", "no_coverage", len(result.Response))
		return result, nil
	}

	zoneName := spatialData.ZoneData.Feature.ZoneName
	fingerprint := model.Fingerprint(req.Question, req.Lat, req.Lng, zoneName, language)

	// A cache failure is a miss, never an outage.
	cacheCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	cached, err := u.cacheRepo.Get(cacheCtx, fingerprint)
	cancel()
	if err != nil {
		log.Printf("⚠️ Cache lookup failed, treating as miss: %v", err)
	}
	if cached != nil {
		log.Printf("✅ Cache hit for zone %s", zoneName)
		u.logAnalytics(req, zoneName, "cached", len(cached.Response))
		return &model.AskResult{
			Response: cached.Response,
			ZoneName: zoneName,
			Cached:   true,
			Metadata: cached.Metadata,
		}, nil
	}

	metadata := model.ResponseMetadata{
		Model:          u.modelName,
		Language:       language,
		ZoneCode:       spatialData.ZoneData.Zone.Code,
		SpatialContext: true,
		Authoritative:  spatialData.ZoneData.Regulation != nil,
	}

	answer, err := u.answerRepo.GenerateAnswer(ctx, req.Question, spatialData, language)
	if err != nil {
		// Degrade to the offline summary built from the same
		// regulatory context the prompt carried.
		log.Printf("⚠️ Answer generation failed, using fallback: %v", err)
		metadata.Fallback = true
		metadata.Error = err.Error()
		fallback := ai.FallbackAnswer(req.Question, spatialData.ZoneData, language)
		u.logAnalytics(req, zoneName, "fallback", len(fallback))
		return &model.AskResult{
			Response: fallback,
			ZoneName: zoneName,
			Metadata: metadata,
		}, nil
	}

	log.Printf("🎉 Answer generated (%d chars, zone: %s)", len(answer), zoneName)

	// Cache writes are best effort.
	putCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	if err := u.cacheRepo.Put(putCtx, fingerprint, req.Question, req.Lat, req.Lng, zoneName, answer, metadata); err != nil {
		log.Printf("⚠️ Failed to cache answer: %v", err)
	}
	cancel()

	u.logAnalytics(req, zoneName, "generated", len(answer))

	return &model.AskResult{
		Response: answer,
		ZoneName: zoneName,
		Metadata: metadata,
	}, nil
}

func (u *askUseCaseImpl) SweepCache(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	removed, err := u.cacheRepo.SweepExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("cache sweep failed: %w", err)
	}
	return removed, nil
}

// logAnalytics records the question event in the background so a slow
// analytics table never delays the answer.
func (u *askUseCaseImpl) logAnalytics(req *model.AskRequest, zoneName, responseType string, responseLength int) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	entry := &model.AnalyticsEntry{
		SessionID:      sessionID,
		Question:       req.Question,
		Lat:            req.Lat,
		Lng:            req.Lng,
		ZoneName:       zoneName,
		ResponseType:   responseType,
		ResponseLength: responseLength,
		UserAgent:      req.UserAgent,
		IPAddress:      req.IPAddress,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := u.analyticsRepo.LogQuestion(ctx, entry); err != nil {
			log.Printf("⚠️ Analytics logging failed: %v", err)
		}
	}()
}
