// Package manifestsrc loads the NYC-DB dataset manifest, caching the
// document in the data directory.
package manifestsrc

import (
	"context"

	"github.com/toolness/nycdb-fun/internal/cache"
	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/logging"
	"github.com/toolness/nycdb-fun/pkg/manifest"
)

// SourceName identifies the manifest in logs and errors.
const SourceName = "NYC-DB manifest"

// Source reads the manifest from a cache store.
type Source struct {
	store *cache.Store
	url   string
}

// New returns a source that downloads url into store on a cache miss.
// An empty url selects the upstream NYC-DB manifest.
func New(store *cache.Store, url string) *Source {
	if url == "" {
		url = constants.ManifestURL
	}
	return &Source{store: store, url: url}
}

// URL returns the manifest location.
func (s *Source) URL() string {
	return s.url
}

// Path returns where the manifest is cached.
func (s *Source) Path() string {
	return s.store.Path(constants.ManifestFilename)
}

// Load returns the parsed manifest.
func (s *Source) Load(ctx context.Context) (*manifest.Manifest, error) {
	data, origin, err := s.store.Fetch(ctx, SourceName, constants.ManifestFilename, s.url)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Parse(data, s.Path())
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().
		Str("origin", string(origin)).
		Int("datasets", len(m.Datasets)).
		Int("files", m.FileCount()).
		Msg("Loaded manifest")
	return m, nil
}
