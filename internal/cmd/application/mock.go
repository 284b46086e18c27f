// Package application provides test doubles for the command application
// interface.
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/toolness/nycdb-fun/internal/cache"
	"github.com/toolness/nycdb-fun/internal/cmd/globals"
	"github.com/toolness/nycdb-fun/internal/sources/socrata"
	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/logging"
	"github.com/toolness/nycdb-fun/pkg/manifest"
	"github.com/toolness/nycdb-fun/pkg/reconcile"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    ReconcileFunc: func(ctx context.Context, _ *globals.SourceFlags) (*reconcile.Result, error) {
//	        return reconcile.New(catalog).Reconcile(ctx, m)
//	    },
//	}
//	cmd := docs.NewCommand(mock)
type Mock struct {
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	WrapWidthFunc    func() int
	ManifestFunc     func(ctx context.Context, src *globals.SourceFlags) (*manifest.Manifest, error)
	MetadataFunc     func(src *globals.SourceFlags) *socrata.Source
	ReconcileFunc    func(ctx context.Context, src *globals.SourceFlags) (*reconcile.Result, error)
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return logging.NewNopLogger()
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// WrapWidth returns the wrap width using the mock function or the default.
func (m *Mock) WrapWidth() int {
	if m.WrapWidthFunc != nil {
		return m.WrapWidthFunc()
	}
	return constants.DefaultWrapWidth
}

// Manifest returns a manifest using the mock function or a not-found error.
func (m *Mock) Manifest(ctx context.Context, src *globals.SourceFlags) (*manifest.Manifest, error) {
	if m.ManifestFunc != nil {
		return m.ManifestFunc(ctx, src)
	}
	return nil, errors.NewNotFoundError("manifest", constants.ManifestFilename)
}

// Metadata returns a metadata source using the mock function or an offline
// source over an empty data directory.
func (m *Mock) Metadata(src *globals.SourceFlags) *socrata.Source {
	if m.MetadataFunc != nil {
		return m.MetadataFunc(src)
	}
	dir := constants.DefaultDataDir
	if src != nil && src.DataDir != "" {
		dir = src.DataDir
	}
	return socrata.New(cache.New(dir, nil))
}

// Reconcile returns a result using the mock function or a not-found error.
func (m *Mock) Reconcile(ctx context.Context, src *globals.SourceFlags) (*reconcile.Result, error) {
	if m.ReconcileFunc != nil {
		return m.ReconcileFunc(ctx, src)
	}
	return nil, errors.NewNotFoundError("result", "reconcile")
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "unknown".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "unknown"
}
