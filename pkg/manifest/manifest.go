// Package manifest parses the NYC-DB datasets manifest (datasets.yml).
//
// The manifest maps dataset names to the files each dataset downloads and
// the tables it creates:
//
//	hpd_violations:
//	  files:
//	    - url: https://data.cityofnewyork.us/api/views/wvxf-dwi5/rows.csv?accessType=DOWNLOAD
//	      dest: hpd_violations.csv
//	  schema:
//	    table_name: hpd_violations
//
// A dataset's schema may be a single table declaration or a list of them;
// Parse always yields a list.
package manifest

import (
	"fmt"
	"path"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/toolness/nycdb-fun/pkg/errors"
)

// Manifest is the parsed datasets document. Datasets keep declaration order.
type Manifest struct {
	Datasets []Dataset `json:"datasets" yaml:"datasets"`
}

// Dataset is one named entry of the manifest.
type Dataset struct {
	Name   string     `json:"name" yaml:"-"`
	Files  []File     `json:"files" yaml:"files"`
	Schema TableDecls `json:"schema" yaml:"schema"`
}

// File is a source file downloaded for a dataset.
type File struct {
	URL  string `json:"url" yaml:"url"`
	Dest string `json:"dest" yaml:"dest"`
}

// Stem returns the destination file name without directory or extension.
func (f File) Stem() string {
	base := path.Base(strings.ReplaceAll(f.Dest, "\\", "/"))
	return strings.TrimSuffix(base, path.Ext(base))
}

// TableDecl declares a table created by a dataset.
type TableDecl struct {
	TableName string `json:"table_name" yaml:"table_name"`
}

// TableDecls is a list of table declarations that also accepts a single
// declaration in the source document.
type TableDecls []TableDecl

// UnmarshalYAML implements yaml.BytesUnmarshaler.
func (d *TableDecls) UnmarshalYAML(b []byte) error {
	var probe any
	if err := yaml.Unmarshal(b, &probe); err != nil {
		return err
	}

	switch probe.(type) {
	case nil:
		*d = nil
	case []any:
		var list []TableDecl
		if err := yaml.Unmarshal(b, &list); err != nil {
			return err
		}
		*d = list
	case map[string]any:
		var one TableDecl
		if err := yaml.Unmarshal(b, &one); err != nil {
			return err
		}
		*d = TableDecls{one}
	default:
		return fmt.Errorf("schema must be a table declaration or a list of them, got %T", probe)
	}
	return nil
}

// Parse decodes a manifest document. name identifies the document in errors.
func Parse(data []byte, name string) (*Manifest, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", name, err)
	}

	m := &Manifest{Datasets: make([]Dataset, 0, len(doc))}
	for _, item := range doc {
		key, ok := item.Key.(string)
		if !ok {
			return nil, errors.NewParseError("yaml", name, fmt.Sprintf("dataset name %v is not a string", item.Key), nil)
		}

		raw, err := yaml.Marshal(item.Value)
		if err != nil {
			return nil, errors.WrapParse("yaml", name, err)
		}

		var ds Dataset
		if err := yaml.Unmarshal(raw, &ds); err != nil {
			return nil, errors.NewParseError("yaml", name, fmt.Sprintf("dataset %s: %v", key, err), err)
		}
		ds.Name = key

		for i, f := range ds.Files {
			if f.Dest == "" {
				return nil, errors.NewValidationError(fmt.Sprintf("%s.files[%d].dest", key, i), f, "destination is required")
			}
		}
		for i, decl := range ds.Schema {
			if decl.TableName == "" {
				return nil, errors.NewValidationError(fmt.Sprintf("%s.schema[%d].table_name", key, i), decl, "table name is required")
			}
		}

		m.Datasets = append(m.Datasets, ds)
	}
	return m, nil
}

// Dataset returns the named dataset.
func (m *Manifest) Dataset(name string) (*Dataset, bool) {
	for i := range m.Datasets {
		if m.Datasets[i].Name == name {
			return &m.Datasets[i], true
		}
	}
	return nil, false
}

// FileCount returns the number of file entries across all datasets.
func (m *Manifest) FileCount() int {
	n := 0
	for _, ds := range m.Datasets {
		n += len(ds.Files)
	}
	return n
}
