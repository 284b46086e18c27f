// Package pgcatalog reads column facts from a live PostgreSQL catalog
// through information_schema.
package pgcatalog

import (
	"context"
	"database/sql"
	"slices"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/logging"
	"github.com/toolness/nycdb-fun/pkg/reconcile"
)

// Supported database/sql drivers.
const (
	DriverPgx      = "pgx"
	DriverPgdriver = "pgdriver"
)

const columnsQuery = `SELECT table_name, column_name, is_nullable, data_type, dtd_identifier, ordinal_position
FROM information_schema.columns
WHERE table_schema = ?
ORDER BY table_name, ordinal_position`

const elementTypeQuery = `SELECT data_type
FROM information_schema.element_types
WHERE object_schema = ? AND object_name = ? AND object_type = 'TABLE' AND collection_type_identifier = ?`

type columnRow struct {
	TableName       string `bun:"table_name"`
	ColumnName      string `bun:"column_name"`
	IsNullable      string `bun:"is_nullable"`
	DataType        string `bun:"data_type"`
	DTDIdentifier   string `bun:"dtd_identifier"`
	OrdinalPosition int    `bun:"ordinal_position"`
}

// Catalog implements reconcile.CatalogSource.
type Catalog struct {
	db *bun.DB
}

var _ reconcile.CatalogSource = (*Catalog)(nil)

// Open connects to dsn with the named driver and verifies the connection.
func Open(ctx context.Context, dsn, driver string) (*Catalog, error) {
	if dsn == "" {
		return nil, errors.NewConfigError("database", "database URL is not set", nil)
	}

	sqldb, err := openSQL(dsn, driver)
	if err != nil {
		return nil, err
	}

	c := NewFromDB(sqldb)

	pingCtx, cancel := context.WithTimeout(ctx, constants.DatabasePingTimeout)
	defer cancel()
	if err := c.db.PingContext(pingCtx); err != nil {
		_ = c.Close()
		return nil, errors.NewUnavailableError("postgres", redact(dsn), err)
	}

	logging.FromContext(ctx).Debug().Str("driver", driver).Msg("Connected to database")
	return c, nil
}

func openSQL(dsn, driver string) (*sql.DB, error) {
	switch driver {
	case "", DriverPgx:
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, errors.NewConfigError("database", "invalid database URL", err)
		}
		return db, nil
	case DriverPgdriver:
		return sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn))), nil
	default:
		return nil, errors.NewValidationError("db_driver", driver,
			"must be one of "+strings.Join(constants.DBDrivers, ", "))
	}
}

// NewFromDB wraps an open database handle.
func NewFromDB(sqldb *sql.DB) *Catalog {
	return &Catalog{db: bun.NewDB(sqldb, pgdialect.New())}
}

// Close releases the connection pool.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Columns lists the columns of every table in namespace.
func (c *Catalog) Columns(ctx context.Context, namespace string) ([]reconcile.CatalogColumn, error) {
	var rows []columnRow
	if err := c.db.NewRaw(columnsQuery, namespace).Scan(ctx, &rows); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	out := make([]reconcile.CatalogColumn, 0, len(rows))
	for _, r := range rows {
		out = append(out, reconcile.CatalogColumn{
			Table:         r.TableName,
			Column:        r.ColumnName,
			IsNullable:    r.IsNullable == "YES",
			DataType:      r.DataType,
			DTDIdentifier: r.DTDIdentifier,
			Position:      r.OrdinalPosition,
		})
	}

	// Table names compare by byte order whatever the database collation.
	slices.SortStableFunc(out, func(a, b reconcile.CatalogColumn) int {
		if n := strings.Compare(a.Table, b.Table); n != 0 {
			return n
		}
		return a.Position - b.Position
	})
	return out, nil
}

// ElementType resolves the element type of an array column.
func (c *Catalog) ElementType(ctx context.Context, namespace, table, dtdIdentifier string) (string, bool, error) {
	var dataType string
	err := c.db.NewRaw(elementTypeQuery, namespace, table, dtdIdentifier).Scan(ctx, &dataType)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return dataType, true, nil
}

// redact drops credentials from a connection URL for error messages.
func redact(dsn string) string {
	at := strings.LastIndex(dsn, "@")
	scheme := strings.Index(dsn, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return dsn
	}
	return dsn[:scheme+3] + "***" + dsn[at:]
}
