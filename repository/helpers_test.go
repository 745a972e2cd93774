package repository

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akinalp/huddle/database"
	"github.com/akinalp/huddle/pkg/logger"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), migrations, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db.Conn
}

func ptr(v int64) *int64 { return &v }
