package repository

import (
	"context"

	"TerraNebular-Backend/internal/domain/model"
)

// AnalyticsRepository records question traffic. Logging is best
// effort; failures never propagate to the answer path.
type AnalyticsRepository interface {
	LogQuestion(ctx context.Context, entry *model.AnalyticsEntry) error
}
