package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	bookpg "github.com/libraryapp/lending/book/postgres"
	"github.com/libraryapp/lending/internal/postgres"
	loanpg "github.com/libraryapp/lending/loan/postgres"
	userpg "github.com/libraryapp/lending/user/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

/* Test helpers shared by the integration tests of the three postgres
 * repositories. One container per test keeps the tests independent at the
 * cost of startup time.
 */

const (
	defaultDatabase = "testdb"
	defaultUser     = "testuser"
	defaultPassword = "testpass"
)

// PostgresContainer bundles the container with an open pool against it.
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

// SetupPostgresContainer starts a PostgreSQL container, opens a pool and
// creates the full schema (users before loans, because of the foreign key).
func SetupPostgresContainer(t *testing.T, ctx context.Context) (*PostgresContainer, func()) {
	t.Helper()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase(defaultDatabase),
		tcpostgres.WithUsername(defaultUser),
		tcpostgres.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	db, err := postgres.Open(connStr)
	require.NoError(t, err, "failed to open pool")

	require.NoError(t, bookpg.NewRepository(db).CreateTable(ctx))
	require.NoError(t, userpg.NewRepository(db).CreateTable(ctx))
	require.NoError(t, loanpg.NewRepository(db).CreateTable(ctx))

	pc := &PostgresContainer{
		Container: pgContainer,
		DB:        db,
		ConnStr:   connStr,
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			t.Logf("failed to close pool: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return pc, cleanup
}
