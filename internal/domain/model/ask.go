package model

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// AskRequest is the body of POST /api/ai/question.
type AskRequest struct {
	Question  string  `json:"question"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Language  string  `json:"language"` // "en" (default), "rw", "fr"
	SessionID string  `json:"session_id"`

	// Filled in by the handler from the HTTP request, not the body.
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
}

// AskResult is the answer returned to the caller. Cached reports
// whether the response was served from the response cache.
type AskResult struct {
	Response string         `json:"response"`
	ZoneName string         `json:"zone_name,omitempty"`
	Cached   bool           `json:"cached"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how an answer was produced.
type ResponseMetadata struct {
	Model          string `json:"model,omitempty"`
	Language       string `json:"language,omitempty"`
	Tokens         int    `json:"tokens,omitempty"`
	ZoneCode       string `json:"zone_code,omitempty"`
	SpatialContext bool   `json:"spatial_context,omitempty"`
	Authoritative  bool   `json:"authoritative,omitempty"`
	Fallback       bool   `json:"fallback,omitempty"`
	Error          string `json:"error,omitempty"`
}

// CachedAnswer is one row of the ai_responses cache table.
type CachedAnswer struct {
	Response  string           `json:"response"`
	Metadata  ResponseMetadata `json:"metadata"`
	CreatedAt time.Time        `json:"created_at"`
}

// AnalyticsEntry is one row of the user_analytics table.
type AnalyticsEntry struct {
	SessionID      string  `json:"session_id"`
	Question       string  `json:"question"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	ZoneName       string  `json:"zone_name"`
	ResponseType   string  `json:"response_type"` // "cached", "generated" or "fallback"
	ResponseLength int     `json:"response_length"`
	UserAgent      string  `json:"user_agent"`
	IPAddress      string  `json:"ip_address"`
}

// CacheTTL is how long a cached answer stays valid; every upsert
// pushes expires_at forward by this much.
const CacheTTL = 24 * time.Hour

// Fingerprint derives the content-addressed cache key. Coordinates are
// rounded to 4 decimal places (~11m) so repeated taps near the same
// spot share one entry; the question string is hashed verbatim.
func Fingerprint(question string, lat, lng float64, zoneName, language string) string {
	key := fmt.Sprintf("%s_%.4f_%.4f_%s_%s", question, lat, lng, zoneName, language)
	sum := md5.Sum([]byte(key))
	return hex.EncodeToString(sum[:])
}
