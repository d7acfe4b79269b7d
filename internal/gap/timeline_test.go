package gap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

func TestEstimateTimeline_LargeGapDoublesBaseHours(t *testing.T) {
	g := types.SkillGap{
		SkillName:     "Python",
		TaxonomyLevel: 2,
		CurrentLevel:  20,
		TargetLevel:   80, // gap 75% of target, > 60%
	}

	estimate, err := EstimateTimeline(g, 10, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 120, estimate.EstimatedHours) // 60 base * 2.0 gap multiplier
	assert.Equal(t, 12, estimate.WeeksToComplete)
	assert.Equal(t, types.TierBasic, estimate.ComplexityTier)
}

func TestEstimateTimeline_GapMultiplierBands(t *testing.T) {
	base := types.SkillGap{TaxonomyLevel: 2, TargetLevel: 100}

	small := base
	small.CurrentLevel = 70 // 30% gap, no multiplier
	medium := base
	medium.CurrentLevel = 40 // 60% gap, 1.5x
	large := base
	large.CurrentLevel = 39 // 61% gap, 2.0x

	smallEst, err := EstimateTimeline(small, 10, 1.0)
	require.NoError(t, err)
	mediumEst, err := EstimateTimeline(medium, 10, 1.0)
	require.NoError(t, err)
	largeEst, err := EstimateTimeline(large, 10, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 60, smallEst.EstimatedHours)
	assert.Equal(t, 90, mediumEst.EstimatedHours)
	assert.Equal(t, 120, largeEst.EstimatedHours)
}

func TestEstimateTimeline_VelocityBands(t *testing.T) {
	g := types.SkillGap{TaxonomyLevel: 4, CurrentLevel: 70, TargetLevel: 100}

	slow, err := EstimateTimeline(g, 10, 0.5)
	require.NoError(t, err)
	average, err := EstimateTimeline(g, 10, 1.0)
	require.NoError(t, err)
	fast, err := EstimateTimeline(g, 10, 1.5)
	require.NoError(t, err)

	assert.Equal(t, 156, slow.EstimatedHours) // 120 * 1.3
	assert.Equal(t, 120, average.EstimatedHours)
	assert.Equal(t, 96, fast.EstimatedHours) // 120 * 0.8
}

func TestEstimateTimeline_BoundaryVelocitiesUseNoMultiplier(t *testing.T) {
	g := types.SkillGap{TaxonomyLevel: 4, CurrentLevel: 70, TargetLevel: 100}

	atSlow, err := EstimateTimeline(g, 10, 0.8)
	require.NoError(t, err)
	atFast, err := EstimateTimeline(g, 10, 1.2)
	require.NoError(t, err)

	// 0.8 and 1.2 sit exactly on the thresholds: neither band applies
	assert.Equal(t, 120, atSlow.EstimatedHours)
	assert.Equal(t, 120, atFast.EstimatedHours)
}

func TestEstimateTimeline_HoursNonDecreasingInComplexity(t *testing.T) {
	previous := 0
	for level := 1.0; level <= 7; level++ {
		g := types.SkillGap{TaxonomyLevel: level, CurrentLevel: 70, TargetLevel: 100}
		estimate, err := EstimateTimeline(g, 10, 1.0)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, estimate.EstimatedHours, previous, "level %v", level)
		previous = estimate.EstimatedHours
	}
}

func TestEstimateTimeline_WeeksCeilToWholeWeeks(t *testing.T) {
	g := types.SkillGap{TaxonomyLevel: 2, CurrentLevel: 70, TargetLevel: 100}

	estimate, err := EstimateTimeline(g, 7, 1.0)
	require.NoError(t, err)

	// 60 hours at 7 h/week is 8.57 weeks, always rounded up
	assert.Equal(t, 9, estimate.WeeksToComplete)
}

func TestEstimateTimeline_ComplexityTiers(t *testing.T) {
	tiers := map[float64]string{
		3: types.TierBasic,
		5: types.TierIntermediate,
		6: types.TierAdvanced,
	}

	for level, tier := range tiers {
		g := types.SkillGap{TaxonomyLevel: level, CurrentLevel: 70, TargetLevel: 100}
		estimate, err := EstimateTimeline(g, 10, 1.0)
		require.NoError(t, err)
		assert.Equal(t, tier, estimate.ComplexityTier, "level %v", level)
	}
}

func TestEstimateTimeline_RejectsInvalidInputs(t *testing.T) {
	valid := types.SkillGap{TaxonomyLevel: 2, CurrentLevel: 20, TargetLevel: 80}

	var invalid *InvalidInputError

	_, err := EstimateTimeline(valid, 0, 1.0)
	assert.ErrorAs(t, err, &invalid)

	noTarget := valid
	noTarget.TargetLevel = 0
	_, err = EstimateTimeline(noTarget, 10, 1.0)
	assert.ErrorAs(t, err, &invalid)

	alreadyMet := valid
	alreadyMet.CurrentLevel = 80
	_, err = EstimateTimeline(alreadyMet, 10, 1.0)
	assert.ErrorAs(t, err, &invalid)
}
