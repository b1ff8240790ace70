package elasticluster

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCacheTTL is how long cached template names stay fresh.
// list-templates parses the whole cloud configuration, which is far too
// slow to run on every keystroke.
const DefaultCacheTTL = 5 * time.Minute

// TemplateCache persists template names between completion requests.
type TemplateCache struct {
	path string
	ttl  time.Duration
}

// cacheFile is the on-disk cache format.
type cacheFile struct {
	Templates []string  `yaml:"templates"`
	FetchedAt time.Time `yaml:"fetched_at"`
}

// NewTemplateCache creates a cache stored at path with the given TTL.
// A non-positive TTL falls back to DefaultCacheTTL.
func NewTemplateCache(path string, ttl time.Duration) *TemplateCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &TemplateCache{path: path, ttl: ttl}
}

// Path returns the cache file location.
func (c *TemplateCache) Path() string {
	return c.path
}

// Get returns the cached template names if the cache is fresh.
func (c *TemplateCache) Get() ([]string, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}

	var f cacheFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, false
	}

	if time.Since(f.FetchedAt) > c.ttl {
		return nil, false
	}
	return f.Templates, true
}

// Put stores template names with the current timestamp.
func (c *TemplateCache) Put(names []string) error {
	data, err := yaml.Marshal(&cacheFile{
		Templates: names,
		FetchedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

// Invalidate removes the cache file. A missing file is not an error.
func (c *TemplateCache) Invalidate() error {
	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Info describes the cache state for diagnostics. fresh follows the
// same TTL rule as Get: an expired cache is reported stale even though
// its contents are still readable.
func (c *TemplateCache) Info() (count int, age time.Duration, fresh bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return 0, 0, false
	}

	var f cacheFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return 0, 0, false
	}

	age = time.Since(f.FetchedAt)
	return len(f.Templates), age, age <= c.ttl
}
