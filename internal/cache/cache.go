// Package cache stores raw model responses on disk keyed by a digest of the
// model name and prompt, so repeated generations with identical inputs can be
// replayed without another model call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
)

// Cache is a directory of response files. A zero Dir disables caching; every
// operation then reports a miss.
type Cache struct {
	Dir string
}

// Key builds the cache key for a model and prompt pair.
func Key(model, prompt string) string {
	h := sha256.Sum256([]byte(model + "\n\n" + prompt))
	return hex.EncodeToString(h[:])
}

func (c *Cache) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *Cache) pathFor(key string) string {
	return filepath.Join(c.Dir, key+".txt")
}

// Get returns the cached response text for key, if present.
func (c *Cache) Get(_ context.Context, key string) (string, bool) {
	if err := c.ensureDir(); err != nil {
		return "", false
	}
	b, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

// Put writes the response text for key. Failures are ignored by callers: a
// cold cache only costs another model call.
func (c *Cache) Put(_ context.Context, key, text string) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(c.pathFor(key), []byte(text), 0o644)
}
