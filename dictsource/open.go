package dictsource

import (
	"database/sql"
	"os"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/azuread"
	"github.com/pkg/errors"
	"golang.org/x/net/proxy"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// OpenSocks5Sql opens dsn through database/sql, optionally dialing
// through a SOCKS5 proxy named by the SQL_SOCKS environment variable,
// mirroring the teacher's OpenSocks5Sql: "azuresql://" selects AD-based
// auth, "sqlserver://" selects password-based auth, and any other dsn
// (including "postgres://") is rejected with an error. Postgres dsns are
// opened with OpenPostgres instead, which does not use SQL_SOCKS.
func OpenSocks5Sql(dsn string) (*sql.DB, error) {
	var connector *mssql.Connector
	var err error

	switch {
	case strings.HasPrefix(dsn, "azuresql://"):
		connector, err = azuread.NewConnector(dsn)
	case strings.HasPrefix(dsn, "sqlserver://"):
		connector, err = mssql.NewConnector(dsn)
	default:
		return nil, errors.New("expected a sqlserver:// or azuresql:// dsn")
	}
	if err != nil {
		return nil, errors.Wrap(err, "building mssql connector")
	}

	if socksAddr := os.Getenv("SQL_SOCKS"); socksAddr != "" {
		dialer, err := proxy.SOCKS5("tcp", socksAddr, nil, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "connecting with SOCKS5 to %s", socksAddr)
		}
		ctxDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, errors.New("SOCKS5 dialer does not support context dialing")
		}
		connector.Dialer = ctxDialer
	}

	return sql.OpenDB(connector), nil
}

// OpenPostgres opens dsn via pgx's database/sql-compatible stdlib
// driver. Unlike OpenSocks5Sql's mssql.Connector, stdlib.Driver has no
// per-connection dialer hook to override, so SQL_SOCKS proxying is only
// wired for the mssql/azuresql path; a Postgres dictionary source is
// expected to run on a network that does not need one.
func OpenPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening postgres dsn")
	}
	return db, nil
}
