package gap

import (
	"math"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Learning-velocity bands for timeline adjustment. Fast learners need less
// time, slow learners more.
const (
	fastVelocityThreshold = 1.2
	slowVelocityThreshold = 0.8

	fastVelocityMultiplier = 0.8
	slowVelocityMultiplier = 1.3
)

// EstimateTimeline recomputes the effort to close a gap from its taxonomy
// complexity level, the learner's availability, and their learning velocity.
//
// This estimate is deliberately independent of the gap's TimeToAcquireHours:
// both paths share the same base complexity hours, but timeline estimation
// additionally scales by velocity and by the relative size of the gap.
func EstimateTimeline(g types.SkillGap, weeklyHours, learningVelocity float64) (*types.TimelineEstimate, error) {
	if weeklyHours <= 0 {
		return nil, &InvalidInputError{Field: "weekly_availability_hours", Reason: "must be positive"}
	}
	if g.TargetLevel <= 0 {
		return nil, &InvalidInputError{Field: "target_level", Reason: "must be positive"}
	}
	if g.CurrentLevel < 0 || g.CurrentLevel >= g.TargetLevel {
		return nil, &InvalidInputError{Field: "current_level", Reason: "must be in [0, target_level)"}
	}

	baseHours := baseHoursForLevel(g.TaxonomyLevel)

	velocityMultiplier := 1.0
	switch {
	case learningVelocity > fastVelocityThreshold:
		velocityMultiplier = fastVelocityMultiplier
	case learningVelocity < slowVelocityThreshold:
		velocityMultiplier = slowVelocityMultiplier
	}

	gapPercent := float64(g.TargetLevel-g.CurrentLevel) / float64(g.TargetLevel) * 100
	gapMultiplier := 1.0
	switch {
	case gapPercent > 60:
		gapMultiplier = 2.0
	case gapPercent > 30:
		gapMultiplier = 1.5
	}

	estimatedHours := int(math.Round(baseHours * velocityMultiplier * gapMultiplier))

	return &types.TimelineEstimate{
		EstimatedHours:  estimatedHours,
		WeeksToComplete: int(math.Ceil(float64(estimatedHours) / weeklyHours)),
		ComplexityTier:  complexityTier(g.TaxonomyLevel),
	}, nil
}

// complexityTier buckets a taxonomy level into the three named tiers.
func complexityTier(level float64) string {
	switch {
	case level <= 3:
		return types.TierBasic
	case level <= 5:
		return types.TierIntermediate
	default:
		return types.TierAdvanced
	}
}
