package gap

import (
	"math"
	"sort"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Weights for the priority-score components. Each component is normalized to
// [0,1] before weighting, so the weighted sum stays within [0,1].
const (
	importanceWeight    = 0.30
	timeToCloseWeight   = 0.25
	marketDemandWeight  = 0.20
	careerCapitalWeight = 0.15
	velocityWeight      = 0.10

	// Ceiling applied to time-to-acquire before normalization. Gaps above
	// this are not penalized further.
	timeCapHours = 400.0

	// Velocity contribution saturates once the learner is twice as fast
	// as average.
	velocityCap = 2.0
)

// Prioritize scores each gap with a weighted multi-factor formula and returns
// the gaps sorted by descending priority score. The time term is inverted so
// faster-to-close gaps score higher. Scores are rounded to two decimals; ties
// preserve relative input order.
func Prioritize(gaps []types.SkillGap, learningVelocity float64) []types.PrioritizedSkillGap {
	prioritized := make([]types.PrioritizedSkillGap, 0, len(gaps))
	for _, g := range gaps {
		prioritized = append(prioritized, types.PrioritizedSkillGap{
			SkillGap:      g,
			PriorityScore: priorityScore(g, learningVelocity),
		})
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].PriorityScore > prioritized[j].PriorityScore
	})

	return prioritized
}

// priorityScore computes the 0-100 weighted score for a single gap.
func priorityScore(g types.SkillGap, learningVelocity float64) float64 {
	timeScore := 1 - math.Min(g.TimeToAcquireHours, timeCapHours)/timeCapHours
	velocityScore := math.Min(learningVelocity/velocityCap, 1.0)

	score := (g.Importance*importanceWeight +
		timeScore*timeToCloseWeight +
		g.MarketDemand*marketDemandWeight +
		g.CareerCapitalScore*careerCapitalWeight +
		velocityScore*velocityWeight) * 100

	return round2(score)
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
