package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/pathwise/internal/assessment"
	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory database with the question catalog
// seeded. It is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openSeeded(t, ":memory:")
}

// NewTestFileDB is NewTestDB backed by a WAL file under t.TempDir(), for tests
// that need more than one connection.
func NewTestFileDB(t *testing.T) *sql.DB {
	t.Helper()
	return openSeeded(t, filepath.Join(t.TempDir(), "pathwise.db"))
}

func openSeeded(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { database.Close() })

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM assessment_questions`).Scan(&n))
	require.Equal(t, len(assessment.DefaultCatalog()), n, "question catalog not seeded")
	return database
}

func NewTestUoW(database *sql.DB) *db.SQLiteUnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
