package reconcile

import (
	"context"

	"github.com/toolness/nycdb-fun/pkg/manifest"
)

// SourceName identifies where a piece of metadata came from.
type SourceName string

// String returns the string representation of a source name
func (sn SourceName) String() string {
	return string(sn)
}

// Known sources.
const (
	NYCOpenData SourceName = "NYC Open Data"
	LiveCatalog SourceName = "PostgreSQL catalog"
	Manifest    SourceName = "NYC-DB manifest"
)

// RemoteColumn is a column as described by a remote metadata provider.
type RemoteColumn struct {
	FieldName   string
	Name        string
	Description string
}

// RemoteTable is the descriptive metadata of one source file.
type RemoteTable struct {
	Name        string
	Description string
	URL         string
	Columns     []RemoteColumn
}

// MetadataSource supplies descriptive metadata for manifest files.
type MetadataSource interface {
	// Name identifies the provider; it becomes the description source.
	Name() SourceName

	// Match reports whether file is hosted where metadata is published.
	// Files that do not match are skipped without error.
	Match(file manifest.File) bool

	// Fetch returns the metadata of a matching file.
	Fetch(ctx context.Context, file manifest.File) (*RemoteTable, error)
}

// CatalogColumn is one row of the live catalog.
type CatalogColumn struct {
	Table         string
	Column        string
	IsNullable    bool
	DataType      string
	DTDIdentifier string
	Position      int
}

// CatalogSource queries the live database catalog.
type CatalogSource interface {
	// Columns lists every column of every table in namespace, ordered by
	// table name then ordinal position.
	Columns(ctx context.Context, namespace string) ([]CatalogColumn, error)

	// ElementType resolves the element type of an array column. The
	// boolean is false when the catalog has no matching row.
	ElementType(ctx context.Context, namespace, table, dtdIdentifier string) (string, bool, error)
}
