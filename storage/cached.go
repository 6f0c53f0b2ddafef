package storage

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultExistsCacheSize   = 1024
	defaultExistsCacheExpiry = time.Minute
)

// CachedConfig configures the existence cache of a Cached adapter.
type CachedConfig struct {
	CacheSize int
	Expiry    time.Duration
}

// Cached decorates another Adapter with an expiring LRU cache over Exists.
// Repeated existence checks against slow backends are served from memory;
// every mutation passes through to the inner adapter and evicts the cache
// entries it may have invalidated.
type Cached struct {
	Adapter

	cache *expirable.LRU[string, bool]
}

var _ Adapter = (*Cached)(nil)

// NewCached wraps inner with an existence cache.
func NewCached(inner Adapter, config CachedConfig) *Cached {
	if config.CacheSize <= 0 {
		config.CacheSize = defaultExistsCacheSize
	}
	if config.Expiry <= 0 {
		config.Expiry = defaultExistsCacheExpiry
	}

	return &Cached{
		Adapter: inner,
		cache:   expirable.NewLRU[string, bool](config.CacheSize, nil, config.Expiry),
	}
}

// Exists reports whether path exists, serving repeated checks from cache.
func (c *Cached) Exists(path string) (bool, error) {
	if exists, ok := c.cache.Get(path); ok {
		return exists, nil
	}

	exists, err := c.Adapter.Exists(path)
	if err != nil {
		return false, err
	}

	c.cache.Add(path, exists)
	return exists, nil
}

// Mkdir creates the directory at path. With parents, missing ancestors may
// be created as well, so the whole ancestor chain is evicted.
func (c *Cached) Mkdir(path string, parents, existOk bool) error {
	if err := c.Adapter.Mkdir(path, parents, existOk); err != nil {
		return err
	}
	c.forgetChain(path)
	return nil
}

// WriteFile creates the file at path with the given content.
func (c *Cached) WriteFile(path, content string, overwrite bool) error {
	if err := c.Adapter.WriteFile(path, content, overwrite); err != nil {
		return err
	}
	c.cache.Remove(path)
	return nil
}

// Remove deletes the entry at path and evicts it along with any cached
// descendants.
func (c *Cached) Remove(path string, recursive bool) error {
	if err := c.Adapter.Remove(path, recursive); err != nil {
		return err
	}
	c.forgetSubtree(path)
	return nil
}

// Move relocates src to dst.
func (c *Cached) Move(src, dst string) error {
	if err := c.Adapter.Move(src, dst); err != nil {
		return err
	}
	c.forgetSubtree(src)
	c.forgetSubtree(dst)
	return nil
}

// forgetChain evicts path and every ancestor up to the backend root.
func (c *Cached) forgetChain(path string) {
	for {
		c.cache.Remove(path)
		parent := c.Dir(path)
		if parent == path {
			return
		}
		path = parent
	}
}

// forgetSubtree evicts path and every cached entry underneath it. The
// prefix check relies on the separator the inner adapter joins with.
func (c *Cached) forgetSubtree(path string) {
	sep := c.separator()
	for _, key := range c.cache.Keys() {
		if key == path || strings.HasPrefix(key, path+sep) {
			c.cache.Remove(key)
		}
	}
}

func (c *Cached) separator() string {
	joined := c.Join("a", "b")
	return strings.TrimSuffix(strings.TrimPrefix(joined, "a"), "b")
}
