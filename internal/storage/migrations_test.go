package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, s *SQLiteStorage, name string) bool {
	t.Helper()
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	require.NoError(t, ApplyMigrations(ctx, s.db))

	var n int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&n))
	assert.Equal(t, len(AllMigrations), n)

	v, err := currentVersion(ctx, s.db)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, v.String())
}

func TestRollbackMigration(t *testing.T) {
	ctx := context.Background()
	s := setupTestDB(t)

	require.NoError(t, RollbackMigration(ctx, s.db))
	assert.False(t, tableExists(t, s, "selections"))
	assert.True(t, tableExists(t, s, "kv_store"))

	v, err := currentVersion(ctx, s.db)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.String())

	require.NoError(t, RollbackMigration(ctx, s.db))
	assert.False(t, tableExists(t, s, "kv_store"))
	assert.False(t, tableExists(t, s, "schema_version"))

	assert.Error(t, RollbackMigration(ctx, s.db))

	// Re-applying restores the full schema
	require.NoError(t, ApplyMigrations(ctx, s.db))
	assert.True(t, tableExists(t, s, "selections"))
}
