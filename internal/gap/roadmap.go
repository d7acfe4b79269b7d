package gap

import (
	"math"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Fixed milestone titles per phase index.
var milestoneTitles = []string{
	"Critical Skills Foundation",
	"Core Competencies Development",
	"Advanced Skills Mastery",
}

// GenerateRoadmap partitions an already-rank-sorted gap list into up to three
// contiguous phases of ceil(n/3) gaps each. The split is positional on rank
// order, not a clustering by content. Phases that would be empty are omitted.
func GenerateRoadmap(prioritized []types.PrioritizedSkillGap, weeklyHours float64) ([]types.RoadmapPhase, error) {
	if weeklyHours <= 0 {
		return nil, &InvalidInputError{Field: "weekly_availability_hours", Reason: "must be positive"}
	}

	phases := make([]types.RoadmapPhase, 0, len(milestoneTitles))
	if len(prioritized) == 0 {
		return phases, nil
	}

	phaseSize := int(math.Ceil(float64(len(prioritized)) / 3))
	for i := 0; i < len(milestoneTitles); i++ {
		start := i * phaseSize
		if start >= len(prioritized) {
			break
		}
		end := start + phaseSize
		if end > len(prioritized) {
			end = len(prioritized)
		}

		chunk := prioritized[start:end]
		names := make([]string, 0, len(chunk))
		totalHours := 0.0
		for _, g := range chunk {
			names = append(names, g.SkillName)
			totalHours += g.TimeToAcquireHours
		}

		phases = append(phases, types.RoadmapPhase{
			PhaseNumber:            len(phases) + 1,
			SkillNames:             names,
			EstimatedDurationWeeks: int(math.Ceil(totalHours / weeklyHours)),
			MilestoneTitle:         milestoneTitles[i],
		})
	}

	return phases, nil
}
