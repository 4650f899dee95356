package repository

import (
	"context"

	"TerraNebular-Backend/internal/domain/model"
)

// AnswerGenerationRepository is the text-completion collaborator
// boundary: given the assembled regulatory context and a citizen's
// question, produce a free-text answer in the requested language.
type AnswerGenerationRepository interface {
	GenerateAnswer(ctx context.Context, question string, spatialData *model.LocationSpatialData, language string) (string, error)
}
