package folio

import (
	"database/sql"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = sql.ErrNoRows

// PostCache keeps the published posts and the tag list in memory so page
// renders, the feed, and the sitemap never hit SQLite on the hot path. A
// slug index is built at load time because post pages look up by slug on
// every request. Admin writes call Invalidate; otherwise entries age out
// after the TTL.
type PostCache struct {
	mu      sync.RWMutex
	posts   []BlogPost
	bySlug  map[string]BlogPost
	tags    []string
	fetched time.Time
	ttl     time.Duration
	store   *Store
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
// Called after every post save and delete.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.bySlug = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.store.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := c.store.ListTags()
	if err != nil {
		return err
	}
	bySlug := make(map[string]BlogPost, len(posts))
	for _, p := range posts {
		bySlug[p.Slug] = p
	}
	c.posts = posts
	c.bySlug = bySlug
	c.tags = tags
	c.fetched = time.Now()
	return nil
}

// snapshot returns the cached posts, slug index, and tags after ensuring the
// cache is fresh. It tries a read lock first; only takes a write lock if a
// reload is needed.
func (c *PostCache) snapshot() ([]BlogPost, map[string]BlogPost, []string, error) {
	c.mu.RLock()
	if c.valid() {
		posts, bySlug, tags := c.posts, c.bySlug, c.tags
		c.mu.RUnlock()
		return posts, bySlug, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, nil, err
	}
	return c.posts, c.bySlug, c.tags, nil
}

// ListPosts returns published posts, optionally filtered by tag.
func (c *PostCache) ListPosts(tag string) ([]BlogPost, error) {
	posts, _, _, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return posts, nil
	}
	normalized := normalizeTag(tag)
	var filtered []BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// ListTags returns all unique tags from published posts.
func (c *PostCache) ListTags() ([]string, error) {
	_, _, tags, err := c.snapshot()
	return tags, err
}

// GetPost returns a single published post by slug from the cache.
func (c *PostCache) GetPost(slug string) (BlogPost, error) {
	_, bySlug, _, err := c.snapshot()
	if err != nil {
		return BlogPost{}, err
	}
	if p, ok := bySlug[slug]; ok {
		return p, nil
	}
	return BlogPost{}, ErrNotFound
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
