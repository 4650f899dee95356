package repository

import (
	"context"

	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
	"TerraNebular-Backend/internal/infrastructure/database"
)

type PostgresAnalyticsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresAnalyticsRepository(client *database.PostgreSQLClient) repository.AnalyticsRepository {
	return &PostgresAnalyticsRepository{
		client: client,
	}
}

// LogQuestion records one question event. Callers treat failures as
// non-fatal.
func (r *PostgresAnalyticsRepository) LogQuestion(ctx context.Context, entry *model.AnalyticsEntry) error {
	query := `
		INSERT INTO user_analytics
			(session_id, question, location, zone_name, response_type, response_length, user_agent, ip_address, created_at)
		VALUES
			($1, $2, ST_SetSRID(ST_MakePoint($4, $3), 4326), $5, $6, $7, $8, $9, NOW())
	`

	_, err := r.client.DB.ExecContext(ctx, query,
		entry.SessionID, entry.Question, entry.Lat, entry.Lng,
		entry.ZoneName, entry.ResponseType, entry.ResponseLength,
		entry.UserAgent, entry.IPAddress)
	if err != nil {
		return storeErr("analytics insert failed", err)
	}

	return nil
}
