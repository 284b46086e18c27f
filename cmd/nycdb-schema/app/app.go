// Package app provides the application context and dependency management
// for the nycdb-schema CLI. It centralizes configuration, logging, and the
// lifecycle of the database connection.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/toolness/nycdb-fun/cmd/application"
	"github.com/toolness/nycdb-fun/internal/cache"
	"github.com/toolness/nycdb-fun/internal/cmd/globals"
	"github.com/toolness/nycdb-fun/internal/sources/manifestsrc"
	"github.com/toolness/nycdb-fun/internal/sources/pgcatalog"
	"github.com/toolness/nycdb-fun/internal/sources/socrata"
	"github.com/toolness/nycdb-fun/internal/transport"
	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/logging"
	"github.com/toolness/nycdb-fun/pkg/manifest"
	"github.com/toolness/nycdb-fun/pkg/reconcile"
)

// App represents the nycdb-schema application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	flags  *globals.Flags

	// Catalog connection (lazy-initialized, singleton)
	mu      sync.Mutex
	catalog reconcile.CatalogSource
	closer  func() error
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// WrapWidth returns the configured documentation wrap width.
func (a *App) WrapWidth() int {
	return a.config.WrapWidth
}

// store returns the data directory cache selected by src. Downloads on a
// miss authenticate with auth.
func (a *App) store(src *globals.SourceFlags, auth transport.Authenticator) *cache.Store {
	dir := a.config.DataDir
	if src != nil && src.DataDir != "" {
		dir = src.DataDir
	}

	client := transport.New(
		transport.WithTimeout(a.config.HTTPTimeout),
		transport.WithUserAgent(transport.DefaultUserAgent+"/"+a.version),
		transport.WithAuth(auth),
	)
	return cache.New(dir, client)
}

// Manifest loads the dataset manifest through the data directory cache.
func (a *App) Manifest(ctx context.Context, src *globals.SourceFlags) (*manifest.Manifest, error) {
	url := a.config.ManifestURL
	if src != nil && src.ManifestURL != "" {
		url = src.ManifestURL
	}
	return manifestsrc.New(a.store(src, &transport.NoAuth{}), url).Load(a.withLogger(ctx))
}

// Metadata returns the NYC Open Data metadata source.
func (a *App) Metadata(src *globals.SourceFlags) *socrata.Source {
	return socrata.New(a.store(src, transport.SocrataAppToken(a.config.SocrataAppToken)))
}

// Catalog returns the live catalog, connecting on first use.
func (a *App) Catalog(ctx context.Context) (reconcile.CatalogSource, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	c, err := pgcatalog.Open(a.withLogger(ctx), a.config.DatabaseURL, a.config.DBDriver)
	if err != nil {
		return nil, err
	}
	a.catalog = c
	a.closer = c.Close
	return c, nil
}

// Reconcile runs the reconciler against the configured sources.
func (a *App) Reconcile(ctx context.Context, src *globals.SourceFlags) (*reconcile.Result, error) {
	ctx = a.withLogger(ctx)

	m, err := a.Manifest(ctx, src)
	if err != nil {
		return nil, err
	}

	catalog, err := a.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	namespace := a.config.Schema
	if src != nil && src.Schema != "" {
		namespace = src.Schema
	}

	r := reconcile.New(catalog,
		reconcile.WithMetadataSource(a.Metadata(src)),
		reconcile.WithNamespace(namespace),
	)
	return r.Reconcile(ctx, m)
}

// withLogger attaches the app logger unless ctx already carries one.
func (a *App) withLogger(ctx context.Context) context.Context {
	if logging.FromContext(ctx) != logging.Default() {
		return ctx
	}
	return logging.WithLogger(ctx, a.logger)
}

// Shutdown releases the database connection if one was opened.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.catalog = nil
	a.closer = nil
	if err != nil {
		return errors.WrapResource("close", "database", "", err)
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets the live catalog instead of connecting to the database
// (useful for testing).
func WithCatalog(catalog reconcile.CatalogSource) Option {
	return func(a *App) error {
		a.catalog = catalog
		return nil
	}
}
