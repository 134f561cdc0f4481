package imagegen

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// DefaultRetention is how long generated images stay on disk.
const DefaultRetention = 24 * time.Hour

// Cache stores generated images on disk under unique names so they can be
// attached to outgoing messages and cleaned up later.
type Cache struct {
	dir string
}

// NewCache creates the image directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Save writes PNG bytes to a uniquely named file and returns its name and
// full path.
func (c *Cache) Save(data []byte) (name, path string, err error) {
	name = uuid.NewString() + ".png"
	path = filepath.Join(c.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", "", fmt.Errorf("failed to write image: %w", err)
	}
	return name, path, nil
}

// CleanupOld deletes cached images older than maxAge and returns how many
// were removed.
func (c *Cache) CleanupOld(maxAge time.Duration) int {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		log.Printf("[imagegen] cleanup: read dir: %v", err)
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".png" {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			log.Printf("[imagegen] cleanup: remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	return removed
}

// RunCleanupLoop removes stale images once per interval until ctx ends.
func (c *Cache) RunCleanupLoop(ctx context.Context, interval, maxAge time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.CleanupOld(maxAge); n > 0 {
				log.Printf("[imagegen] removed %d stale images", n)
			}
		}
	}
}
