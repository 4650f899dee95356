package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/domain/repository"
	"TerraNebular-Backend/internal/infrastructure/database"
)

type PostgresAnswerCacheRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresAnswerCacheRepository(client *database.PostgreSQLClient) repository.AnswerCacheRepository {
	return &PostgresAnswerCacheRepository{
		client: client,
	}
}

// Get returns the cached answer for a fingerprint. Expired rows are
// treated as absent even before the sweeper removes them.
func (r *PostgresAnswerCacheRepository) Get(ctx context.Context, fingerprint string) (*model.CachedAnswer, error) {
	query := `
		SELECT response, metadata, created_at
		FROM ai_responses
		WHERE question_hash = $1 AND expires_at > NOW()
	`

	var answer model.CachedAnswer
	var metadataJSON []byte
	err := r.client.DB.QueryRowContext(ctx, query, fingerprint).
		Scan(&answer.Response, &metadataJSON, &answer.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storeErr("cache lookup failed", err)
	}

	if len(metadataJSON) > 0 {
		if err := json.Unmarshal(metadataJSON, &answer.Metadata); err != nil {
			return nil, fmt.Errorf("failed to parse cached metadata: %w", err)
		}
	}

	return &answer, nil
}

// Put upserts one answer keyed by fingerprint. A conflicting row is
// overwritten and its expiry reset to a fresh TTL.
func (r *PostgresAnswerCacheRepository) Put(ctx context.Context, fingerprint, question string, lat, lng float64, zoneName, response string, metadata model.ResponseMetadata) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to serialize metadata: %w", err)
	}

	query := `
		INSERT INTO ai_responses
			(question_hash, question, location, zone_name, response, metadata, created_at, expires_at)
		VALUES
			($1, $2, ST_SetSRID(ST_MakePoint($4, $3), 4326), $5, $6, $7, NOW(), NOW() + $8::interval)
		ON CONFLICT (question_hash) DO UPDATE SET
			question = EXCLUDED.question,
			location = EXCLUDED.location,
			zone_name = EXCLUDED.zone_name,
			response = EXCLUDED.response,
			metadata = EXCLUDED.metadata,
			created_at = NOW(),
			expires_at = NOW() + $8::interval
	`

	ttl := fmt.Sprintf("%d seconds", int(model.CacheTTL.Seconds()))
	_, err = r.client.DB.ExecContext(ctx, query,
		fingerprint, question, lat, lng, zoneName, response, metadataJSON, ttl)
	if err != nil {
		return storeErr("cache upsert failed", err)
	}

	return nil
}

// SweepExpired deletes rows past their expiry.
func (r *PostgresAnswerCacheRepository) SweepExpired(ctx context.Context) (int64, error) {
	result, err := r.client.DB.ExecContext(ctx, `DELETE FROM ai_responses WHERE expires_at < NOW()`)
	if err != nil {
		return 0, storeErr("cache sweep failed", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count swept rows: %w", err)
	}
	return removed, nil
}
