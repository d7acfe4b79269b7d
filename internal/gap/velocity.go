package gap

import (
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// DefaultLearningVelocity is the neutral multiplier assumed for learners with
// no usable skill history.
const DefaultLearningVelocity = 1.0

// CalculateLearningVelocity derives a learner-specific speed multiplier from
// historical skill records. Only completed skills count: status "mastered",
// or "practicing" at 100% progress. Each qualifying record with a positive
// time estimate contributes its actual-to-estimated time ratio; the result is
// the mean of contributions, rounded to two decimals.
//
// Returns exactly 1.0 when there is no history or no record has a positive
// estimate, signaling "assume average learner".
func CalculateLearningVelocity(history []types.SkillRecord) float64 {
	total := 0.0
	count := 0
	for _, record := range history {
		if !isCompleted(record) {
			continue
		}
		if record.EstimatedHoursToTarget <= 0 {
			continue
		}
		total += record.TimeSpentHours / record.EstimatedHoursToTarget
		count++
	}

	if count == 0 {
		return DefaultLearningVelocity
	}
	return round2(total / float64(count))
}

func isCompleted(record types.SkillRecord) bool {
	switch record.Status {
	case types.SkillStatusMastered:
		return true
	case types.SkillStatusPracticing:
		return record.Progress == 100
	default:
		return false
	}
}
