package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:metarepo?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGet_AbsentKeyReturnsNilNil(t *testing.T) {
	r := NewSQLiteMetadataRepository(setupDB(t))

	v, err := r.Get(context.Background(), KeyHasLaunched)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSetGet_RoundTripAndOverwrite(t *testing.T) {
	r := NewSQLiteMetadataRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyRefreshToken, []byte("tok-1")))
	v, err := r.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-1"), v)

	require.NoError(t, r.Set(ctx, KeyRefreshToken, []byte("tok-2")))
	v, err = r.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, []byte("tok-2"), v)
}

func TestDelete_RemovesOnlyThatKey(t *testing.T) {
	r := NewSQLiteMetadataRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, KeyIDToken, []byte("id")))
	require.NoError(t, r.Set(ctx, KeyAccessToken, []byte("at")))
	require.NoError(t, r.Delete(ctx, KeyIDToken))

	v, err := r.Get(ctx, KeyIDToken)
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = r.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, []byte("at"), v)
}
