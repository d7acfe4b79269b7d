package courses

import (
	"math"
	"sort"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Weights for the composite course-desirability score. Each component is
// normalized to [0,1] before weighting.
const (
	ratingWeight      = 0.35
	reviewWeight      = 0.25
	priceWeight       = 0.20
	gapPriorityWeight = 0.20

	maxRating = 5.0

	// Review counts saturate here; a course with more reviews gains nothing.
	reviewCountCap = 10000.0

	paidPriceScore = 0.5

	// Quick-win thresholds: a short course for a high-priority gap.
	quickWinMinPriority = 70.0
	quickWinMaxHours    = 20.0
)

// Score computes the composite desirability score (0-100 integer) of a course
// for a given gap. Price scoring is binary: literally "Free" scores 1.0,
// anything else 0.5.
func Score(course types.Course, g types.PrioritizedSkillGap) int {
	ratingNorm := course.Rating / maxRating
	reviewNorm := math.Min(float64(course.ReviewCount), reviewCountCap) / reviewCountCap
	priceScore := paidPriceScore
	if course.Price == types.PriceFree {
		priceScore = 1.0
	}
	gapPriorityNorm := g.PriorityScore / 100

	composite := ratingNorm*ratingWeight +
		reviewNorm*reviewWeight +
		priceScore*priceWeight +
		gapPriorityNorm*gapPriorityWeight

	return int(math.Round(composite * 100))
}

// Prioritize returns the full course list sorted by descending composite
// score for the given gap. Truncation to a short list is the caller's
// responsibility. Equal scores preserve relative input order.
func Prioritize(candidates []types.Course, g types.PrioritizedSkillGap) []types.Course {
	type scored struct {
		course types.Course
		score  int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, course := range candidates {
		ranked = append(ranked, scored{course: course, score: Score(course, g)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]types.Course, 0, len(ranked))
	for _, s := range ranked {
		result = append(result, s.course)
	}
	return result
}

// IsQuickWin reports whether a course can close a high-priority gap quickly.
func IsQuickWin(course types.Course, g types.PrioritizedSkillGap) bool {
	return g.PriorityScore >= quickWinMinPriority && course.EstimatedHours <= quickWinMaxHours
}
