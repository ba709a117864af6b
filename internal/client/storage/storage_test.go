package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchemaAndIsReusable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES(?, ?)`, "k", []byte("v"))
	require.NoError(t, err)

	// reopening must not fail on already-applied migrations
	db2, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	var v []byte
	require.NoError(t, db2.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, "k").Scan(&v))
	require.Equal(t, []byte("v"), v)
}
