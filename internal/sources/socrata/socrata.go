// Package socrata reads per-dataset column metadata published by the NYC
// Open Data portal. The portal serves a JSON view document for every
// dataset; documents are cached verbatim in the data directory as
// <stem>.json and reused on later runs.
package socrata

import (
	"context"
	"regexp"

	"github.com/toolness/nycdb-fun/internal/cache"
	"github.com/toolness/nycdb-fun/internal/transport"
	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/logging"
	"github.com/toolness/nycdb-fun/pkg/manifest"
	"github.com/toolness/nycdb-fun/pkg/reconcile"
)

var viewURLPattern = regexp.MustCompile(`^(https://data\.cityofnewyork\.us/api/views/[0-9A-Za-z\-]+)`)

// MatchViewURL returns the view document URL for a dataset download URL.
// The boolean is false when url is not hosted on the portal.
func MatchViewURL(url string) (string, bool) {
	m := viewURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CacheName returns the data directory file name for a manifest file.
func CacheName(file manifest.File) string {
	return file.Stem() + ".json"
}

// View is the subset of a portal view document that is documented.
type View struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Columns     []Column `json:"columns"`
}

// Column is one column of a view document.
type Column struct {
	FieldName   string `json:"fieldName"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Source implements reconcile.MetadataSource against the portal.
type Source struct {
	store *cache.Store
}

var _ reconcile.MetadataSource = (*Source)(nil)

// New returns a source that reads and fills store.
func New(store *cache.Store) *Source {
	return &Source{store: store}
}

// Name identifies the portal as the description source.
func (s *Source) Name() reconcile.SourceName {
	return reconcile.NYCOpenData
}

// Match reports whether file was downloaded from the portal.
func (s *Source) Match(file manifest.File) bool {
	_, ok := MatchViewURL(file.URL)
	return ok
}

// Cached reports whether the view document of file is already in the data
// directory.
func (s *Source) Cached(file manifest.File) bool {
	return s.store.Has(CacheName(file))
}

// Fetch returns the view metadata for file, downloading it on a cache miss.
func (s *Source) Fetch(ctx context.Context, file manifest.File) (*reconcile.RemoteTable, error) {
	viewURL, ok := MatchViewURL(file.URL)
	if !ok {
		return nil, errors.NewValidationError("url", file.URL, "not an NYC Open Data view URL")
	}

	name := CacheName(file)
	ctx = logging.WithTable(ctx, file.Stem())

	data, origin, err := s.store.Fetch(ctx, s.Name().String(), name, viewURL)
	if err != nil {
		return nil, err
	}

	view, err := Parse(data, s.store.Path(name))
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("origin", string(origin)).
		Int("columns", len(view.Columns)).
		Msg("Read view metadata")

	return view.RemoteTable(viewURL), nil
}

// Parse decodes a view document. name identifies the document in errors.
func Parse(data []byte, name string) (*View, error) {
	var view View
	if err := transport.DecodeJSON(data, &view, name); err != nil {
		return nil, err
	}
	for _, c := range view.Columns {
		if c.FieldName == "" {
			return nil, errors.NewParseError("json", name, "column "+c.Name+" has no fieldName", nil)
		}
	}
	return &view, nil
}

// RemoteTable converts the view for reconciliation. url is the public
// location of the view.
func (v *View) RemoteTable(url string) *reconcile.RemoteTable {
	rt := &reconcile.RemoteTable{
		Name:        v.Name,
		Description: v.Description,
		URL:         url,
		Columns:     make([]reconcile.RemoteColumn, 0, len(v.Columns)),
	}
	for _, c := range v.Columns {
		rt.Columns = append(rt.Columns, reconcile.RemoteColumn{
			FieldName:   c.FieldName,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return rt
}
