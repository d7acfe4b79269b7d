// Package recommend orchestrates course recommendations for prioritized
// skill gaps: fetch candidates per gap, rank them, tag quick wins, and attach
// affiliate links.
package recommend

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonsiu/career-os-sub001/internal/courses"
	"github.com/jonsiu/career-os-sub001/internal/coursesearch"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

const (
	// Courses kept per skill after ranking.
	defaultCoursesPerSkill = 3

	// Concurrent per-skill fetches. Each skill's fetch+rank is independent
	// and side-effect free, so the loop fans out safely.
	defaultFetchConcurrency = 4
)

// Service produces course recommendations from configured search providers.
type Service struct {
	providers       []coursesearch.Provider
	coursesPerSkill int
	concurrency     int
}

// Option configures a Service.
type Option func(*Service)

// WithCoursesPerSkill overrides the per-skill short-list size.
func WithCoursesPerSkill(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.coursesPerSkill = n
		}
	}
}

// WithConcurrency overrides the per-skill fetch fan-out limit.
func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewService creates a recommendation service over the given providers.
func NewService(providers []coursesearch.Provider, opts ...Option) *Service {
	s := &Service{
		providers:       providers,
		coursesPerSkill: defaultCoursesPerSkill,
		concurrency:     defaultFetchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ForGaps fetches and ranks courses for every gap. Fetches run concurrently,
// but the returned list is ordered by descending skill priority score, not by
// arrival order. Gaps with no available courses still appear, with an empty
// course list.
func (s *Service) ForGaps(ctx context.Context, userID, analysisID string, gaps []types.PrioritizedSkillGap) ([]types.CourseRecommendation, error) {
	recommendations := make([]types.CourseRecommendation, len(gaps))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, skillGap := range gaps {
		g.Go(func() error {
			rec, err := s.forGap(gCtx, userID, analysisID, skillGap)
			if err != nil {
				return err
			}
			recommendations[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Restore priority order after concurrent completion. Stable, so gaps
	// with equal scores keep their analysis rank.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].SkillPriorityScore > recommendations[j].SkillPriorityScore
	})

	return recommendations, nil
}

// forGap fetches candidates from every provider, ranks them for the gap, and
// finishes the short list with quick-win tags and affiliate links.
func (s *Service) forGap(ctx context.Context, userID, analysisID string, skillGap types.PrioritizedSkillGap) (types.CourseRecommendation, error) {
	rec := types.CourseRecommendation{
		SkillName:          skillGap.SkillName,
		SkillPriorityScore: skillGap.PriorityScore,
		Courses:            make([]types.Course, 0, s.coursesPerSkill),
	}

	var candidates []types.Course
	for _, provider := range s.providers {
		found, err := provider.Search(ctx, skillGap.SkillName, coursesearch.Filters{})
		if err != nil {
			return rec, err
		}
		candidates = append(candidates, found...)
	}

	ranked := courses.Prioritize(candidates, skillGap)
	if len(ranked) > s.coursesPerSkill {
		ranked = ranked[:s.coursesPerSkill]
	}

	for _, course := range ranked {
		course.IsQuickWin = courses.IsQuickWin(course, skillGap)
		linked, err := courses.GenerateAffiliateLink(course, userID, analysisID, skillGap.SkillName)
		if err != nil {
			// A malformed vendor URL should not sink the whole skill; keep
			// the course without an affiliate link.
			linked = course
		}
		rec.Courses = append(rec.Courses, linked)
	}

	return rec, nil
}
