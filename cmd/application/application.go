// Package application provides the application interface for nycdb-schema
// commands.
//
// The Application interface defines the contract between the application
// layer and command implementations, enabling dependency injection and
// testability. Commands accept this interface rather than the concrete App
// type:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            res, err := app.Reconcile(cmd.Context(), sources)
//	            if err != nil {
//	                return err
//	            }
//	            // ... use res
//	            return nil
//	        },
//	    }
//	}
//
// Tests use the Mock in internal/cmd/application.
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/toolness/nycdb-fun/internal/cmd/globals"
	"github.com/toolness/nycdb-fun/internal/sources/socrata"
	"github.com/toolness/nycdb-fun/pkg/manifest"
	"github.com/toolness/nycdb-fun/pkg/reconcile"
)

// Application provides what commands need from the application.
type Application interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// WrapWidth returns the configured documentation wrap width.
	WrapWidth() int

	// Manifest loads the dataset manifest, downloading it on a cache miss.
	// Non-empty fields of src override the configuration.
	Manifest(ctx context.Context, src *globals.SourceFlags) (*manifest.Manifest, error)

	// Metadata returns the NYC Open Data metadata source for the data
	// directory selected by src.
	Metadata(src *globals.SourceFlags) *socrata.Source

	// Reconcile loads the manifest, connects to the database and runs the
	// reconciler.
	Reconcile(ctx context.Context, src *globals.SourceFlags) (*reconcile.Result, error)

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
