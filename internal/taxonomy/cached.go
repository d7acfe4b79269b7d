package taxonomy

import (
	"context"
	"time"

	"github.com/jonsiu/career-os-sub001/internal/cache"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// DefaultCacheTTL is how long role lookups stay fresh. Taxonomy data changes
// rarely; a day is conservative.
const DefaultCacheTTL = 24 * time.Hour

// CachedProvider wraps a Provider with an injected TTL cache keyed by role
// ID. Only successful lookups are cached; NotFound and transient errors pass
// through so a later retry can see fresh data.
type CachedProvider struct {
	inner Provider
	cache *cache.TTL[string, []types.RoleSkill]
}

// NewCachedProvider wraps inner with the given cache. A nil cache gets a
// default one with DefaultCacheTTL.
func NewCachedProvider(inner Provider, c *cache.TTL[string, []types.RoleSkill]) *CachedProvider {
	if c == nil {
		c = cache.NewTTL[string, []types.RoleSkill](DefaultCacheTTL)
	}
	return &CachedProvider{inner: inner, cache: c}
}

// RoleSkills returns cached role skills when fresh, otherwise delegates to
// the wrapped provider and caches the result.
func (p *CachedProvider) RoleSkills(ctx context.Context, roleID string) ([]types.RoleSkill, error) {
	if skills, ok := p.cache.Get(roleID); ok {
		return skills, nil
	}

	skills, err := p.inner.RoleSkills(ctx, roleID)
	if err != nil {
		return nil, err
	}

	p.cache.Set(roleID, skills)
	return skills, nil
}
