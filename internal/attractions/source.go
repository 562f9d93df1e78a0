package attractions

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/travelbuddy/internal/fsops"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Source looks up raw attraction candidates for a destination.
// Implementations return an empty slice, not an error, for unknown destinations.
type Source interface {
	Lookup(ctx context.Context, destination string) ([]Attraction, error)
}

// catalogFile is the on-disk layout of a YAML catalog.
type catalogFile struct {
	Destinations map[string][]Attraction `yaml:"destinations"`
}

// CatalogSource is a stub Source backed by a static YAML catalog.
// With an empty path it serves the catalog compiled into the binary.
type CatalogSource struct {
	fs   fsops.FS
	path string

	// Offline makes every lookup fail as if the search tool were unreachable.
	Offline bool
}

// NewCatalogSource creates a CatalogSource reading the catalog at path,
// or the built-in catalog when path is empty.
func NewCatalogSource(fs fsops.FS, path string) *CatalogSource {
	return &CatalogSource{fs: fs, path: path}
}

// Lookup returns the catalog entries for destination (case-insensitive).
// The catalog is re-read on every call, the way a live tool would be queried.
func (s *CatalogSource) Lookup(ctx context.Context, destination string) ([]Attraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if s.Offline {
		return nil, fmt.Errorf("%w: catalog offline", ErrSourceUnavailable)
	}

	catalog, err := s.load()
	if err != nil {
		return nil, err
	}

	entries := catalog[normalizeTag(destination)]
	out := make([]Attraction, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *CatalogSource) load() (map[string][]Attraction, error) {
	data := defaultCatalog
	if s.path != "" {
		raw, err := s.fs.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read catalog %s: %v", ErrSourceUnavailable, s.path, err)
		}
		data = raw
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse catalog: %v", ErrSourceUnavailable, err)
	}

	catalog := make(map[string][]Attraction, len(file.Destinations))
	for name, entries := range file.Destinations {
		key := normalizeTag(name)
		catalog[key] = append(catalog[key], entries...)
	}
	return catalog, nil
}
