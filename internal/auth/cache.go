// Package auth holds the session-identity cache used by credential
// verification. Validation results are cached briefly so that every
// mutation does not re-hit the user store; the mutation boundary still
// rejects genuinely invalid credentials regardless of cache state.
package auth

import (
	"sync"
	"time"

	"github.com/content-comments-api/internal/models"
)

// IdentityCache maps a bearer credential to its validated identity for
// a short TTL. Entries are invalidated on logout and on credential
// rejection. Safe for concurrent use.
type IdentityCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]identityEntry
	now     func() time.Time
}

type identityEntry struct {
	user     models.CurrentUser
	cachedAt time.Time
}

// NewIdentityCache creates a cache whose entries expire after ttl
func NewIdentityCache(ttl time.Duration) *IdentityCache {
	return &IdentityCache{
		ttl:     ttl,
		entries: make(map[string]identityEntry),
		now:     time.Now,
	}
}

// Get returns the cached identity for credential, or false on a miss.
// Expired entries are dropped lazily.
func (c *IdentityCache) Get(credential string) (*models.CurrentUser, bool) {
	c.mu.RLock()
	entry, ok := c.entries[credential]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.cachedAt) > c.ttl {
		c.Invalidate(credential)
		return nil, false
	}

	user := entry.user
	return &user, true
}

// Put stores the validated identity for credential
func (c *IdentityCache) Put(credential string, user models.CurrentUser) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[credential] = identityEntry{user: user, cachedAt: c.now()}
}

// Invalidate drops the entry for credential, if present
func (c *IdentityCache) Invalidate(credential string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, credential)
}

// Len returns the number of live entries, expired or not
func (c *IdentityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
