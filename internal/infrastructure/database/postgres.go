package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

// PostgreSQLClient wraps the direct PostGIS connection used for all
// spatial queries and the response cache.
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient opens a connection from DB_* environment
// variables and verifies it with a ping.
func NewPostgreSQLClient() (*PostgreSQLClient, error) {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	if host == "" {
		return nil, fmt.Errorf("DB_HOST environment variable is not set")
	}
	if user == "" {
		user = "postgres"
	}
	if password == "" {
		return nil, fmt.Errorf("DB_PASSWORD environment variable is not set")
	}
	if dbname == "" {
		dbname = "postgres"
	}
	if port == "" {
		port = "5432"
	}

	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "require"
	}

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// Close closes the underlying connection pool.
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck pings the database.
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQL client is not initialized")
	}
	return pc.DB.Ping()
}
