// Package reconcile merges the NYC-DB manifest, remote descriptive
// metadata and the live database catalog into one set of table metadata.
//
// Reconciliation runs four passes in a fixed order:
//
//  1. manifest files with published metadata become tables with descriptions
//  2. the live catalog confirms tables and columns and sets their types
//  3. everything the catalog did not confirm is pruned
//  4. manifest schema declarations assign surviving tables to datasets
//
// Placeholder records created by the first pass only survive if the
// second pass confirms them, so the order must not change.
package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/logging"
	"github.com/toolness/nycdb-fun/pkg/manifest"
	"github.com/toolness/nycdb-fun/pkg/schema"
)

// Reconciler builds table metadata from its sources.
type Reconciler struct {
	metadata  MetadataSource
	catalog   CatalogSource
	namespace string
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithNamespace sets the database schema that is documented.
func WithNamespace(namespace string) Option {
	return func(r *Reconciler) {
		if namespace != "" {
			r.namespace = namespace
		}
	}
}

// WithMetadataSource sets the remote metadata provider. Without one every
// manifest file is skipped and tables carry catalog facts only.
func WithMetadataSource(src MetadataSource) Option {
	return func(r *Reconciler) {
		r.metadata = src
	}
}

// New creates a Reconciler reading the live catalog from catalog.
func New(catalog CatalogSource, opts ...Option) *Reconciler {
	r := &Reconciler{
		catalog:   catalog,
		namespace: constants.DefaultSchema,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Namespace returns the documented database schema.
func (r *Reconciler) Namespace() string {
	return r.namespace
}

// Reconcile runs every pass against m. Any error aborts the run; there is
// no partial result.
func (r *Reconciler) Reconcile(ctx context.Context, m *manifest.Manifest) (*Result, error) {
	start := time.Now()
	ctx = logging.WithOperation(ctx, "reconcile")
	logger := logging.FromContext(ctx)

	res := &Result{
		Tables:   schema.NewTables(),
		manifest: m,
	}

	if err := r.applyRemoteMetadata(ctx, m, res); err != nil {
		return nil, err
	}
	if err := r.applyCatalog(ctx, res); err != nil {
		return nil, err
	}

	res.Stats.TablesPruned, res.Stats.ColumnsPruned = res.Tables.Prune()
	logger.Debug().
		Int("tables_pruned", res.Stats.TablesPruned).
		Int("columns_pruned", res.Stats.ColumnsPruned).
		Msg("Pruned metadata absent from the catalog")

	if err := r.assignDatasets(ctx, m, res); err != nil {
		return nil, err
	}

	for _, t := range res.Tables.List() {
		if t.Dataset == "" {
			res.Stats.UnassignedTables++
			logger.Debug().Str("table", t.Name).Msg("Table is not declared by any dataset")
		}
	}

	res.Stats.Duration = time.Since(start)
	logStats(logger, &res.Stats, res.Tables.Len())
	return res, nil
}

// applyRemoteMetadata creates a table for every manifest file with
// published metadata. Later files overwrite earlier ones with the same stem.
func (r *Reconciler) applyRemoteMetadata(ctx context.Context, m *manifest.Manifest, res *Result) error {
	for _, ds := range m.Datasets {
		dsCtx := logging.WithDataset(ctx, ds.Name)
		logger := logging.FromContext(dsCtx)

		for _, file := range ds.Files {
			res.Stats.ManifestFiles++

			if r.metadata == nil || !r.metadata.Match(file) {
				res.Stats.RemoteSkipped++
				logger.Debug().Str("url", file.URL).Msg("No published metadata for file")
				continue
			}

			remote, err := r.metadata.Fetch(dsCtx, file)
			if err != nil {
				return fmt.Errorf("fetching metadata for %s: %w", file.Dest, err)
			}
			res.Stats.RemoteMatched++

			table := tableFromRemote(file.Stem(), ds.Name, r.metadata.Name(), remote)
			if res.Tables.Put(table) {
				res.Stats.RemoteOverwrites++
				logger.Warn().Str("table", table.Name).Msg("Metadata for table replaced by a later file")
			}
			logger.Debug().
				Str("table", table.Name).
				Int("columns", table.Len()).
				Msg("Loaded remote metadata")
		}
	}
	return nil
}

func tableFromRemote(name, dataset string, source SourceName, remote *RemoteTable) *schema.TableMeta {
	table := schema.NewTableMeta(name)
	table.VerboseName = strings.TrimSpace(remote.Name)
	table.Description = schema.NormalizeDescription(remote.Description)
	table.DescriptionSource = source.String()
	table.SourceURL = remote.URL
	table.Dataset = dataset

	for _, rc := range remote.Columns {
		table.SetColumn(&schema.ColumnMeta{
			Name:        rc.FieldName,
			VerboseName: strings.TrimSpace(rc.Name),
			Description: schema.NormalizeDescription(rc.Description),
		})
	}
	return table
}

// applyCatalog confirms tables and columns present in the live catalog and
// records their nullability and types.
func (r *Reconciler) applyCatalog(ctx context.Context, res *Result) error {
	rows, err := r.catalog.Columns(ctx, r.namespace)
	if err != nil {
		return errors.WrapResource("query", "catalog", r.namespace, err)
	}

	seen := make(map[string]int)
	for _, row := range rows {
		res.Stats.CatalogColumns++

		table := res.Tables.Ensure(row.Table)
		table.IsInDBSchema = true

		seen[row.Table]++
		col := table.EnsureColumn(row.Column)
		col.IsInDBSchema = true
		col.IsNullable = row.IsNullable
		col.Position = row.Position
		if col.Position == 0 {
			col.Position = seen[row.Table]
		}

		dt, err := schema.ParseDataType(row.DataType)
		if err != nil {
			return fmt.Errorf("column %s.%s: %w", row.Table, row.Column, err)
		}
		col.DataType = dt
		col.DataSubtype = ""

		if dt.IsArray() {
			res.Stats.ArrayColumns++
			sub, err := r.resolveElementType(ctx, row)
			if err != nil {
				return err
			}
			col.DataSubtype = sub
		}
	}
	return nil
}

func (r *Reconciler) resolveElementType(ctx context.Context, row CatalogColumn) (schema.DataType, error) {
	elem, ok, err := r.catalog.ElementType(ctx, r.namespace, row.Table, row.DTDIdentifier)
	if err != nil {
		return "", errors.WrapResource("query", "element type", row.Table+"."+row.Column, err)
	}
	if !ok {
		return "", errors.NewInconsistencyError("catalog", row.Table, row.Column,
			fmt.Sprintf("array column has no element type for descriptor %q", row.DTDIdentifier))
	}

	sub, err := schema.ParseDataType(elem)
	if err != nil {
		return "", fmt.Errorf("element type of %s.%s: %w", row.Table, row.Column, err)
	}
	if sub.IsArray() {
		return "", errors.NewInconsistencyError("catalog", row.Table, row.Column, "array element type is itself an array")
	}
	return sub, nil
}

// assignDatasets applies the manifest's table declarations to surviving
// tables. A declared table that does not exist is fatal.
func (r *Reconciler) assignDatasets(ctx context.Context, m *manifest.Manifest, res *Result) error {
	assigned := make(map[string]string)

	for _, ds := range m.Datasets {
		logger := logging.FromContext(logging.WithDataset(ctx, ds.Name))

		for _, decl := range ds.Schema {
			table, ok := res.Tables.Get(decl.TableName)
			if !ok {
				return fmt.Errorf("dataset %s declares table %s: %w",
					ds.Name, decl.TableName, errors.NewNotFoundError("table", decl.TableName))
			}

			if prev, ok := assigned[decl.TableName]; ok && prev != ds.Name {
				res.Stats.DatasetReassignments++
				logger.Warn().
					Str("table", decl.TableName).
					Str("previous_dataset", prev).
					Msg("Table declared by more than one dataset, keeping the last")
			}

			table.Dataset = ds.Name
			assigned[decl.TableName] = ds.Name
			res.Stats.DatasetAssignments++
		}
	}
	return nil
}

func logStats(logger *zerolog.Logger, s *Statistics, tables int) {
	logger.Info().
		Int("tables", tables).
		Int("manifest_files", s.ManifestFiles).
		Int("remote_matched", s.RemoteMatched).
		Int("remote_skipped", s.RemoteSkipped).
		Int("catalog_columns", s.CatalogColumns).
		Int("array_columns", s.ArrayColumns).
		Int("tables_pruned", s.TablesPruned).
		Int("unassigned_tables", s.UnassignedTables).
		Dur("duration", s.Duration).
		Msg("Reconciliation complete")
}
