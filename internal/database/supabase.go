package database

import (
	"fmt"
	"os"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient wraps the PostgREST client used for the non-spatial
// zone catalog reads.
type SupabaseClient struct {
	Client *supabase.Client
}

// NewSupabaseClient creates a client from SUPABASE_URL and
// SUPABASE_ANON_KEY.
func NewSupabaseClient() (*SupabaseClient, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseAnonKey := os.Getenv("SUPABASE_ANON_KEY")

	if supabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL environment variable is not set")
	}
	if supabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY environment variable is not set")
	}

	client, err := supabase.NewClient(supabaseURL, supabaseAnonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	return &SupabaseClient{
		Client: client,
	}, nil
}

// GetClient returns the underlying Supabase client.
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck confirms the client is initialized. PostgREST has no
// dedicated health endpoint, so this stays a local check.
func (sc *SupabaseClient) HealthCheck() error {
	if sc.Client == nil {
		return fmt.Errorf("Supabase client is not initialized")
	}
	return nil
}
