// Package dictsource implements DictionarySource: a supplier of raw
// dictionary JSON text, backed by a SQL table instead of a file on disk.
// This is an external-collaborator concern per the core's contract — the
// core dictionary package only ever consumes already-read strings.
package dictsource

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
)

// DictionarySource supplies the raw JSON text of the latest revision of
// one named dictionary.
type DictionarySource interface {
	Load(ctx context.Context, name string) (string, error)
}

// sqlSource is shared by PostgresSource and MSSQLSource: both query a
// dict_entries(stroke_key text, translation_json text, dict_name text,
// rev int) table for the newest revision of each stroke_key and
// assemble the rows into one JSON object in Go, the shape
// dictionary.New already accepts.
type sqlSource struct {
	db    *sql.DB
	query string
}

func (s *sqlSource) Load(ctx context.Context, name string) (string, error) {
	rows, err := s.db.QueryContext(ctx, s.query, name)
	if err != nil {
		return "", errors.Wrap(err, "querying dict_entries")
	}
	defer rows.Close()

	entries := make(map[string]json.RawMessage)
	for rows.Next() {
		var strokeKey string
		var translationJSON string
		if err := rows.Scan(&strokeKey, &translationJSON); err != nil {
			return "", errors.Wrap(err, "scanning dict_entries row")
		}
		entries[strokeKey] = json.RawMessage(translationJSON)
	}
	if err := rows.Err(); err != nil {
		return "", errors.Wrap(err, "iterating dict_entries rows")
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return "", errors.Wrap(err, "marshaling aggregated dictionary")
	}
	return string(out), nil
}

// postgresLatestRevQuery picks, per stroke_key, the row with the
// greatest rev for the requested dict_name.
const postgresLatestRevQuery = `
select distinct on (stroke_key) stroke_key, translation_json
from dict_entries
where dict_name = $1
order by stroke_key, rev desc
`

// mssqlLatestRevQuery is the same query expressed with ROW_NUMBER, since
// T-SQL has no DISTINCT ON.
const mssqlLatestRevQuery = `
select stroke_key, translation_json from (
	select stroke_key, translation_json,
	       row_number() over (partition by stroke_key order by rev desc) as rn
	from dict_entries
	where dict_name = @p1
) ranked
where rn = 1
`

// PostgresSource loads dictionaries from a Postgres-backed dict_entries
// table via jackc/pgx's database/sql driver.
type PostgresSource struct{ sqlSource }

// NewPostgresSource wraps an already-opened *sql.DB (see Open).
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{sqlSource{db: db, query: postgresLatestRevQuery}}
}

// MSSQLSource loads dictionaries from a SQL Server-backed dict_entries
// table via microsoft/go-mssqldb.
type MSSQLSource struct{ sqlSource }

// NewMSSQLSource wraps an already-opened *sql.DB (see Open).
func NewMSSQLSource(db *sql.DB) *MSSQLSource {
	return &MSSQLSource{sqlSource{db: db, query: mssqlLatestRevQuery}}
}
