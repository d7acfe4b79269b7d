package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsiu/career-os-sub001/internal/coursesearch"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// fakeProvider returns canned courses per skill and records search calls.
type fakeProvider struct {
	mu      sync.Mutex
	name    string
	results map[string][]types.Course
	err     error
	calls   []string
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Search(_ context.Context, skill string, _ coursesearch.Filters) ([]types.Course, error) {
	p.mu.Lock()
	p.calls = append(p.calls, skill)
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.results[skill], nil
}

func gapWithScore(name string, score float64) types.PrioritizedSkillGap {
	return types.PrioritizedSkillGap{
		SkillGap:      types.SkillGap{SkillName: name},
		PriorityScore: score,
	}
}

func TestForGaps_OrderedByPriorityScore(t *testing.T) {
	provider := &fakeProvider{name: "vendor", results: map[string][]types.Course{}}
	service := NewService([]coursesearch.Provider{provider})

	gaps := []types.PrioritizedSkillGap{
		gapWithScore("Excel", 54),
		gapWithScore("Python", 77.25),
		gapWithScore("SQL", 65),
	}

	recommendations, err := service.ForGaps(context.Background(), "user1", "a1", gaps)
	require.NoError(t, err)

	require.Len(t, recommendations, 3)
	assert.Equal(t, "Python", recommendations[0].SkillName)
	assert.Equal(t, "SQL", recommendations[1].SkillName)
	assert.Equal(t, "Excel", recommendations[2].SkillName)
}

func TestForGaps_GapWithNoCoursesStillAppears(t *testing.T) {
	provider := &fakeProvider{name: "vendor", results: map[string][]types.Course{}}
	service := NewService([]coursesearch.Provider{provider})

	recommendations, err := service.ForGaps(context.Background(), "u", "a", []types.PrioritizedSkillGap{
		gapWithScore("Python", 77.25),
	})
	require.NoError(t, err)

	require.Len(t, recommendations, 1)
	assert.Equal(t, "Python", recommendations[0].SkillName)
	assert.Equal(t, 77.25, recommendations[0].SkillPriorityScore)
	assert.Empty(t, recommendations[0].Courses)
}

func TestForGaps_TruncatesToShortList(t *testing.T) {
	candidates := make([]types.Course, 0, 5)
	for i := 0; i < 5; i++ {
		candidates = append(candidates, types.Course{
			Title:  fmt.Sprintf("Course %d", i),
			URL:    fmt.Sprintf("https://vendor.test/%d", i),
			Rating: float64(i), // distinct scores so ranking is deterministic
		})
	}
	provider := &fakeProvider{name: "vendor", results: map[string][]types.Course{"Python": candidates}}
	service := NewService([]coursesearch.Provider{provider})

	recommendations, err := service.ForGaps(context.Background(), "u", "a", []types.PrioritizedSkillGap{
		gapWithScore("Python", 80),
	})
	require.NoError(t, err)

	require.Len(t, recommendations, 1)
	require.Len(t, recommendations[0].Courses, 3)
	// Best-rated first
	assert.Equal(t, "Course 4", recommendations[0].Courses[0].Title)
}

func TestForGaps_MergesAllProviders(t *testing.T) {
	first := &fakeProvider{name: "a", results: map[string][]types.Course{
		"Python": {{Title: "From A", URL: "https://a.test/python"}},
	}}
	second := &fakeProvider{name: "b", results: map[string][]types.Course{
		"Python": {{Title: "From B", URL: "https://b.test/python"}},
	}}
	service := NewService([]coursesearch.Provider{first, second})

	recommendations, err := service.ForGaps(context.Background(), "u", "a", []types.PrioritizedSkillGap{
		gapWithScore("Python", 80),
	})
	require.NoError(t, err)

	require.Len(t, recommendations, 1)
	assert.Len(t, recommendations[0].Courses, 2)
}

func TestForGaps_TagsQuickWinsAndAffiliateLinks(t *testing.T) {
	provider := &fakeProvider{name: "vendor", results: map[string][]types.Course{
		"Python": {
			{Title: "Short", Provider: "Coursera", URL: "https://www.coursera.org/learn/python", EstimatedHours: 10},
			{Title: "Long", Provider: "Coursera", URL: "https://www.coursera.org/learn/python-deep", EstimatedHours: 120},
		},
	}}
	service := NewService([]coursesearch.Provider{provider})

	recommendations, err := service.ForGaps(context.Background(), "user1", "a1", []types.PrioritizedSkillGap{
		gapWithScore("Python", 80),
	})
	require.NoError(t, err)

	require.Len(t, recommendations, 1)
	require.Len(t, recommendations[0].Courses, 2)
	for _, course := range recommendations[0].Courses {
		assert.Contains(t, course.AffiliateURL, "careerosapp-user1-a1-Python")
		switch course.Title {
		case "Short":
			assert.True(t, course.IsQuickWin)
		case "Long":
			assert.False(t, course.IsQuickWin)
		}
	}
}

func TestForGaps_ProviderErrorAbortsRun(t *testing.T) {
	provider := &fakeProvider{name: "vendor", err: errors.New("request construction failed")}
	service := NewService([]coursesearch.Provider{provider})

	_, err := service.ForGaps(context.Background(), "u", "a", []types.PrioritizedSkillGap{
		gapWithScore("Python", 80),
	})
	assert.Error(t, err)
}

func TestForGaps_SearchesEverySkill(t *testing.T) {
	provider := &fakeProvider{name: "vendor", results: map[string][]types.Course{}}
	service := NewService([]coursesearch.Provider{provider}, WithConcurrency(2))

	gaps := []types.PrioritizedSkillGap{
		gapWithScore("Python", 80),
		gapWithScore("SQL", 70),
		gapWithScore("Excel", 60),
	}

	_, err := service.ForGaps(context.Background(), "u", "a", gaps)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Python", "SQL", "Excel"}, provider.calls)
}

func TestForGaps_NoGaps(t *testing.T) {
	service := NewService(nil)

	recommendations, err := service.ForGaps(context.Background(), "u", "a", nil)
	require.NoError(t, err)
	assert.Empty(t, recommendations)
}
