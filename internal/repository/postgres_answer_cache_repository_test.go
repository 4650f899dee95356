package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TerraNebular-Backend/internal/domain/model"
	"TerraNebular-Backend/internal/infrastructure/database"
)

// newTestPostgresClient connects to the real database or skips the
// test when the environment is not configured.
func newTestPostgresClient(t *testing.T) *database.PostgreSQLClient {
	t.Helper()
	_ = godotenv.Load("../../.env")

	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping database integration test")
	}

	client, err := database.NewPostgreSQLClient()
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestAnswerCache_PutGetRoundtrip(t *testing.T) {
	client := newTestPostgresClient(t)
	repo := NewPostgresAnswerCacheRepository(client)
	ctx := context.Background()

	question := fmt.Sprintf("integration roundtrip %d", time.Now().UnixNano())
	fp := model.Fingerprint(question, -1.9536, 30.0606, "C1-Mixed use zone", "en")

	metadata := model.ResponseMetadata{
		Model:          "claude-sonnet-4-20250514",
		Language:       "en",
		ZoneCode:       "C1",
		SpatialContext: true,
		Authoritative:  true,
	}
	err := repo.Put(ctx, fp, question, -1.9536, 30.0606, "C1-Mixed use zone", "YES, permitted.", metadata)
	require.NoError(t, err)

	cached, err := repo.Get(ctx, fp)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "YES, permitted.", cached.Response)
	assert.Equal(t, "C1", cached.Metadata.ZoneCode)
	assert.True(t, cached.Metadata.Authoritative)
	assert.WithinDuration(t, time.Now(), cached.CreatedAt, time.Minute)
}

func TestAnswerCache_UpsertOverwrites(t *testing.T) {
	client := newTestPostgresClient(t)
	repo := NewPostgresAnswerCacheRepository(client)
	ctx := context.Background()

	question := fmt.Sprintf("integration upsert %d", time.Now().UnixNano())
	fp := model.Fingerprint(question, -1.95, 30.06, "R1-Low density residential zone", "en")

	require.NoError(t, repo.Put(ctx, fp, question, -1.95, 30.06, "R1-Low density residential zone", "first answer", model.ResponseMetadata{}))

	first, err := repo.Get(ctx, fp)
	require.NoError(t, err)
	require.NotNil(t, first)

	require.NoError(t, repo.Put(ctx, fp, question, -1.95, 30.06, "R1-Low density residential zone", "second answer", model.ResponseMetadata{}))

	second, err := repo.Get(ctx, fp)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "second answer", second.Response)
	// The upsert resets created_at along with the expiry.
	assert.False(t, second.CreatedAt.Before(first.CreatedAt))
}

func TestAnswerCache_MissReturnsNil(t *testing.T) {
	client := newTestPostgresClient(t)
	repo := NewPostgresAnswerCacheRepository(client)

	cached, err := repo.Get(context.Background(), "0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestAnswerCache_ExpiredRowIsAMiss(t *testing.T) {
	client := newTestPostgresClient(t)
	repo := NewPostgresAnswerCacheRepository(client)
	ctx := context.Background()

	question := fmt.Sprintf("integration expired %d", time.Now().UnixNano())
	fp := model.Fingerprint(question, -1.95, 30.06, "C1-Mixed use zone", "en")

	// Insert a row that is already past its expiry.
	_, err := client.DB.ExecContext(ctx, `
		INSERT INTO ai_responses
			(question_hash, question, location, zone_name, response, metadata, created_at, expires_at)
		VALUES
			($1, $2, ST_SetSRID(ST_MakePoint(30.06, -1.95), 4326), 'C1-Mixed use zone', 'stale answer', '{}', NOW() - interval '25 hours', NOW() - interval '1 hour')
	`, fp, question)
	require.NoError(t, err)

	// Expired rows read as absent even before the sweeper runs.
	cached, err := repo.Get(ctx, fp)
	require.NoError(t, err)
	assert.Nil(t, cached)

	// The sweeper removes it and counts it.
	removed, err := repo.SweepExpired(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(1))

	var remaining int
	err = client.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM ai_responses WHERE question_hash = $1`, fp).Scan(&remaining)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestAnswerCache_SweepExpired(t *testing.T) {
	client := newTestPostgresClient(t)
	repo := NewPostgresAnswerCacheRepository(client)

	removed, err := repo.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, removed, int64(0))
}
