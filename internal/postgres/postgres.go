package postgres

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

/* One connection pool for the whole application. The catalog, user and loan
 * repositories all share it so that main owns the lifecycle.
 */

// Open opens a pool with the default configuration (25, 5, 5 min).
func Open(connectionString string) (*sql.DB, error) {
	return OpenWithPoolConfig(connectionString, 25, 5, 5)
}

// OpenWithPoolConfig opens a pool with a custom configuration.
// maxOpenConns: maximum simultaneous connections (0 = unlimited)
// maxIdleConns: maximum idle connections kept in the pool
// maxLifeMinutes: maximum lifetime in minutes of a reused connection
func OpenWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*sql.DB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return db, nil
}
