package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devdiary/devdiary-go/internal/crypto"
	"github.com/devdiary/devdiary-go/internal/repository"
)

// NewDB opens a migrated SQLite database in a per-test temp directory.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "devdiary.db") + "?_foreign_keys=on"
	db, err := repository.Open(context.Background(), repository.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// FastHasher uses the smallest Argon2id cost so tests stay quick.
func FastHasher() *crypto.Hasher {
	return crypto.NewHasher(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1})
}
