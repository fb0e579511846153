package sqlite_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard-api/internal/config"
	"taskboard-api/internal/platform/sqlite"
)

// testDBCounter makes every test database name unique. Shared-cache
// in-memory databases with the same name alias each other within the
// process, so tests must not reuse names.
var testDBCounter atomic.Int64

// newTestDB opens a fresh migrated in-memory database for one test and
// closes it when the test finishes.
func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test_%d?mode=memory&cache=shared&_fk=1", testDBCounter.Add(1))
	db, err := sqlite.Open(context.Background(), config.DatabaseConfig{DSN: dsn}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

// newTestProvider opens a fresh database and returns a provider over it.
func newTestProvider(t *testing.T) *sqlite.Provider {
	t.Helper()
	return sqlite.NewProvider(newTestDB(t).DB, nil)
}

func ptr[T any](v T) *T {
	return &v
}
