package taxonomy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsiu/career-os-sub001/internal/cache"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// countingProvider records how often each role is resolved.
type countingProvider struct {
	calls  int
	skills []types.RoleSkill
	err    error
}

func (p *countingProvider) RoleSkills(_ context.Context, _ string) ([]types.RoleSkill, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.skills, nil
}

func TestCachedProvider_SecondLookupServedFromCache(t *testing.T) {
	inner := &countingProvider{skills: []types.RoleSkill{{Name: "Python", Importance: 90, Level: 4}}}
	provider := NewCachedProvider(inner, nil)

	first, err := provider.RoleSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)
	second, err := provider.RoleSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)
}

func TestCachedProvider_DistinctRolesCachedSeparately(t *testing.T) {
	inner := &countingProvider{skills: []types.RoleSkill{{Name: "Python"}}}
	provider := NewCachedProvider(inner, nil)

	_, err := provider.RoleSkills(context.Background(), "role-a")
	require.NoError(t, err)
	_, err = provider.RoleSkills(context.Background(), "role-b")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedProvider_ErrorsNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("taxonomy unavailable")}
	provider := NewCachedProvider(inner, nil)

	_, err := provider.RoleSkills(context.Background(), "15-1252.00")
	require.Error(t, err)

	// Recovery after a transient failure must reach the inner provider
	inner.err = nil
	inner.skills = []types.RoleSkill{{Name: "Python"}}
	skills, err := provider.RoleSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)

	assert.Len(t, skills, 1)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedProvider_ExpiredEntryRefetched(t *testing.T) {
	inner := &countingProvider{skills: []types.RoleSkill{{Name: "Python"}}}
	c := cache.NewTTL[string, []types.RoleSkill](time.Nanosecond)
	provider := NewCachedProvider(inner, c)

	_, err := provider.RoleSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = provider.RoleSkills(context.Background(), "15-1252.00")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
