package reconcile

import (
	"fmt"
	"time"

	"github.com/toolness/nycdb-fun/pkg/manifest"
	"github.com/toolness/nycdb-fun/pkg/schema"
)

// Statistics counts what a reconciliation run did.
type Statistics struct {
	ManifestFiles        int
	RemoteMatched        int
	RemoteSkipped        int
	RemoteOverwrites     int
	CatalogColumns       int
	ArrayColumns         int
	TablesPruned         int
	ColumnsPruned        int
	DatasetAssignments   int
	DatasetReassignments int
	UnassignedTables     int
	Duration             time.Duration
}

// Summary returns a one-line description of the run.
func (s Statistics) Summary() string {
	return fmt.Sprintf("%d files (%d with metadata), %d catalog columns, %d tables pruned, %d unassigned in %v",
		s.ManifestFiles, s.RemoteMatched, s.CatalogColumns, s.TablesPruned, s.UnassignedTables, s.Duration)
}

// Result is the reconciled metadata.
type Result struct {
	Tables *schema.Tables
	Stats  Statistics

	manifest *manifest.Manifest
}

// Datasets groups assigned tables by dataset in manifest order. Within a
// dataset, declared tables come first in declaration order. Datasets with
// no surviving tables are omitted, as are tables that belong to no dataset.
func (r *Result) Datasets() []schema.DatasetMeta {
	var out []schema.DatasetMeta
	if r.manifest == nil {
		return out
	}

	for _, ds := range r.manifest.Datasets {
		meta := schema.DatasetMeta{Name: ds.Name}
		added := make(map[string]bool)

		for _, decl := range ds.Schema {
			t, ok := r.Tables.Get(decl.TableName)
			if !ok || t.Dataset != ds.Name || added[t.Name] {
				continue
			}
			meta.Tables = append(meta.Tables, t)
			added[t.Name] = true
		}
		for _, t := range r.Tables.List() {
			if t.Dataset == ds.Name && !added[t.Name] {
				meta.Tables = append(meta.Tables, t)
				added[t.Name] = true
			}
		}

		if len(meta.Tables) > 0 {
			out = append(out, meta)
		}
	}
	return out
}

// Unassigned returns tables that belong to no dataset, in catalog order.
func (r *Result) Unassigned() []*schema.TableMeta {
	var out []*schema.TableMeta
	for _, t := range r.Tables.List() {
		if t.Dataset == "" {
			out = append(out, t)
		}
	}
	return out
}
