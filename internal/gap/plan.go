package gap

import (
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// BuildPlan runs the full analysis chain: analyze gaps, prioritize them with
// the learner's velocity, estimate a timeline per gap, and generate the phased
// roadmap. The returned Analysis has its critical and nice-to-have buckets
// individually sorted by priority, and the roadmap spans all gaps in rank
// order.
func BuildPlan(learnerSkills []types.LearnerSkill, roleSkills []types.RoleSkill, weeklyHours, learningVelocity float64) (*types.Analysis, error) {
	analysis, err := Analyze(learnerSkills, roleSkills, weeklyHours)
	if err != nil {
		return nil, err
	}

	allGaps := make([]types.SkillGap, 0, len(analysis.CriticalGaps)+len(analysis.NiceToHaveGaps))
	allGaps = append(allGaps, analysis.CriticalGaps...)
	allGaps = append(allGaps, analysis.NiceToHaveGaps...)

	prioritized := Prioritize(allGaps, learningVelocity)

	// Every recorded gap has 0 <= current < target, so estimation only fails
	// on inputs Analyze already rejected.
	for i := range prioritized {
		estimate, err := EstimateTimeline(prioritized[i].SkillGap, weeklyHours, learningVelocity)
		if err != nil {
			return nil, err
		}
		prioritized[i].Timeline = estimate
	}

	roadmap, err := GenerateRoadmap(prioritized, weeklyHours)
	if err != nil {
		return nil, err
	}

	plan := &types.Analysis{
		WeeklyHours:    weeklyHours,
		Velocity:       learningVelocity,
		CriticalGaps:   make([]types.PrioritizedSkillGap, 0, len(analysis.CriticalGaps)),
		NiceToHaveGaps: make([]types.PrioritizedSkillGap, 0, len(analysis.NiceToHaveGaps)),
		ExistingSkills: analysis.ExistingSkills,
		Roadmap:        roadmap,
	}

	// Re-bucket the prioritized list; membership is decided by importance,
	// so filtering preserves both scores and rank order.
	for _, g := range prioritized {
		if g.Importance >= criticalImportance {
			plan.CriticalGaps = append(plan.CriticalGaps, g)
		} else {
			plan.NiceToHaveGaps = append(plan.NiceToHaveGaps, g)
		}
	}

	return plan, nil
}
