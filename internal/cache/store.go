// Package cache keeps downloaded source documents in a local data
// directory. Each resource is one file stored verbatim; a file that exists
// is always used instead of the network and is never invalidated.
package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/logging"
)

// Fetcher downloads a remote document.
type Fetcher interface {
	Fetch(ctx context.Context, source, url string) ([]byte, error)
}

// Origin reports where a document came from.
type Origin string

// Document origins.
const (
	OriginCache   Origin = "cache"
	OriginNetwork Origin = "network"
)

// Store is a directory of cached documents.
type Store struct {
	dir     string
	fetcher Fetcher
}

// New returns a store rooted at dir that downloads misses with fetcher.
// The directory is created on first write.
func New(dir string, fetcher Fetcher) *Store {
	return &Store{dir: dir, fetcher: fetcher}
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Has reports whether name is cached.
func (s *Store) Has(name string) bool {
	info, err := os.Stat(s.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// Read returns the cached bytes of name. The boolean is false on a miss.
func (s *Store) Read(name string) ([]byte, bool, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WrapIO("read", path, err)
	}
	return data, true, nil
}

// Write stores data under name atomically.
func (s *Store) Write(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}

	path := s.Path(name)
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}

// Fetch returns the cached copy of name, downloading url into the cache on
// a miss. source names the remote service in logs and errors. A failed
// download is reported as an unavailable source.
func (s *Store) Fetch(ctx context.Context, source, name, url string) ([]byte, Origin, error) {
	ctx = logging.WithSource(ctx, source)
	logger := logging.FromContext(ctx)

	data, ok, err := s.Read(name)
	if err != nil {
		return nil, "", err
	}
	if ok {
		logger.Debug().Str("file", s.Path(name)).Msg("Using cached document")
		return data, OriginCache, nil
	}

	if s.fetcher == nil {
		return nil, "", errors.NewUnavailableError(source, name, errors.New("no fetcher configured"))
	}

	logger.Info().Str("url", url).Str("file", s.Path(name)).Msg("Downloading")
	data, err = s.fetcher.Fetch(ctx, source, url)
	if err != nil {
		return nil, "", errors.NewUnavailableError(source, name, err)
	}

	if err := s.Write(name, data); err != nil {
		return nil, "", err
	}
	return data, OriginNetwork, nil
}
