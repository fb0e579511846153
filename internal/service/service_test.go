package service_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard-api/internal/config"
	"taskboard-api/internal/platform/sqlite"
	"taskboard-api/internal/store"
)

var testDBCounter atomic.Int64

// newTestProvider opens a fresh migrated in-memory database for one test
// and returns a store provider over it.
func newTestProvider(t *testing.T) store.Provider {
	t.Helper()

	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared&_fk=1", testDBCounter.Add(1))
	db, err := sqlite.Open(context.Background(), config.DatabaseConfig{DSN: dsn}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	require.NoError(t, db.Migrate(context.Background()))
	return sqlite.NewProvider(db.DB, nil)
}

func ptr[T any](v T) *T {
	return &v
}
