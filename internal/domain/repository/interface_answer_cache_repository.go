package repository

import (
	"context"

	"TerraNebular-Backend/internal/domain/model"
)

// AnswerCacheRepository is the content-addressed response cache.
// Fingerprints come from model.Fingerprint; the store enforces a
// uniqueness constraint on the fingerprint so Put is an upsert.
type AnswerCacheRepository interface {
	// Get returns the cached answer for a fingerprint, or nil when
	// absent or expired.
	Get(ctx context.Context, fingerprint string) (*model.CachedAnswer, error)

	// Put upserts an answer: an existing fingerprint is overwritten
	// and its expiry reset to now + model.CacheTTL.
	Put(ctx context.Context, fingerprint, question string, lat, lng float64, zoneName, response string, metadata model.ResponseMetadata) error

	// SweepExpired deletes entries past their expiry and returns the
	// number removed. Safe to run concurrently with normal traffic.
	SweepExpired(ctx context.Context) (int64, error)
}
