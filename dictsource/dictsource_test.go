package dictsource

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These exercise a real Postgres dict_entries table when
// PLOJO_TEST_POSTGRES_DSN is set, the same env-var-gated pattern
// sqltest/fixture.go uses for its own live-database tests.
func TestPostgresSourceLoadsLatestRevision(t *testing.T) {
	dsn := os.Getenv("PLOJO_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("PLOJO_TEST_POSTGRES_DSN not set")
	}

	db, err := OpenPostgres(dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `
		create temporary table dict_entries (
			stroke_key text, translation_json text, dict_name text, rev int
		)`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `insert into dict_entries values
		('H-L', '"hello"', 'main', 1),
		('H-L', '"hi"', 'main', 2),
		('WORLD', '"world"', 'main', 1)`)
	require.NoError(t, err)

	src := NewPostgresSource(db)
	raw, err := src.Load(ctx, "main")
	require.NoError(t, err)

	var entries map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	assert.Equal(t, "hi", entries["H-L"])
	assert.Equal(t, "world", entries["WORLD"])
}

func TestOpenSocks5SqlRejectsUnknownScheme(t *testing.T) {
	_, err := OpenSocks5Sql("postgres://example")
	require.Error(t, err)
}
