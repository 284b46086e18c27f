// Package constants provides shared constants used throughout the NYC-DB
// schema tool. This includes timeouts, file permissions, and the default
// locations of the manifest, local data directory and database namespace.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for manifest and metadata downloads
	DefaultHTTPTimeout = 30 * time.Second

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second

	// DatabasePingTimeout bounds the initial connectivity check
	DatabasePingTimeout = 10 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Source locations
const (
	// ManifestURL is where the NYC-DB dataset manifest is published
	ManifestURL = "https://raw.githubusercontent.com/aepyornis/nyc-db/master/src/nycdb/datasets.yml"

	// ManifestFilename is the cache file name of the manifest inside the data directory
	ManifestFilename = "datasets.yml"

	// DefaultDataDir is the local directory holding cached source documents
	DefaultDataDir = "data"

	// DefaultSchema is the database namespace that is documented
	DefaultSchema = "public"

	// DefaultDBDriver is the database/sql driver used to reach PostgreSQL
	DefaultDBDriver = "pgx"
)

// Rendering defaults
const (
	// DefaultWrapWidth is the column at which text blocks are wrapped
	DefaultWrapWidth = 80

	// MinWrapWidth keeps prefixes from consuming the whole line
	MinWrapWidth = 20
)

// DBDrivers lists the supported database drivers.
var DBDrivers = []string{"pgx", "pgdriver"}
