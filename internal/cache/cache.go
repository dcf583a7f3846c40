// Package cache persists a best-effort local snapshot of the store
// collections, the same-device fallback used when no remote backend is
// configured or reachable.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"

	"HireHub-backend/internal/model"
)

// DefaultFileName mirrors the storage key the web client used.
const DefaultFileName = "hirehub_state.json"

// Cache reads and writes one serialized snapshot blob at a fixed path.
type Cache struct {
	path string
}

// New returns a cache bound to path. An empty path falls back to
// HIREHUB_CACHE_FILE, then to DefaultFileName under the user cache dir.
func New(path string) *Cache {
	if path == "" {
		path = os.Getenv("HIREHUB_CACHE_FILE")
	}
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = "."
		}
		path = filepath.Join(dir, "hirehub", DefaultFileName)
	}
	return &Cache{path: path}
}

// Path returns the file the cache reads and writes.
func (c *Cache) Path() string {
	return c.path
}

// Load reads the persisted snapshot. A missing file is not an error, it
// just returns nil so the caller falls back to seed data.
func (c *Cache) Load() (*model.StateSnapshot, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var snap model.StateSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save merges the update over whatever is already on disk and rewrites
// the whole blob. The write goes through a temp file and rename so a
// crash can't leave a half-written snapshot behind.
func (c *Cache) Save(update model.StateUpdate) error {
	existing, err := c.Load()
	if err != nil || existing == nil {
		existing = &model.StateSnapshot{}
	}
	existing.Apply(update)

	raw, err := json.Marshal(existing)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".hirehub-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}
