package gap

import (
	"math"
	"strings"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Numeric levels for learner proficiency tiers on the 0-100 scale.
var proficiencyLevels = map[string]int{
	types.ProficiencyBeginner:     25,
	types.ProficiencyIntermediate: 50,
	types.ProficiencyAdvanced:     75,
	types.ProficiencyExpert:       100,
}

// Categories the course market consistently pays a premium for. Matching is
// a case-insensitive substring check against the taxonomy category text.
var highDemandCategories = []string{
	"technical skills",
	"computer skills",
	"systems skills",
}

const (
	highMarketDemand    = 0.8
	defaultMarketDemand = 0.5

	// Importance at or above this (on the 0-1 scale) makes a gap critical.
	criticalImportance = 0.7

	maxTaxonomyLevel = 7.0
)

// Base hours to close a gap at average learning speed, by taxonomy
// complexity level. Coarse midpoints, shared with timeline estimation.
func baseHoursForLevel(level float64) float64 {
	switch {
	case level <= 3:
		return 60
	case level <= 5:
		return 120
	default:
		return 280
	}
}

// Analyze compares a learner's skills against a target role's requirements
// and partitions every target skill into exactly one of: critical gaps,
// nice-to-have gaps, or existing skills.
//
// Matching is case-insensitive exact name match; target skills the learner
// does not hold at all are treated as fully absent (current level 0). A skill
// whose numeric current level meets or exceeds the target is existing, never
// a gap. weeklyHours is validated up front so downstream timeline estimation
// can never divide by zero.
func Analyze(learnerSkills []types.LearnerSkill, roleSkills []types.RoleSkill, weeklyHours float64) (*types.GapAnalysis, error) {
	if weeklyHours <= 0 {
		return nil, &InvalidInputError{Field: "weekly_availability_hours", Reason: "must be positive"}
	}

	// Index learner levels by normalized name.
	learnerLevels := make(map[string]int, len(learnerSkills))
	for _, skill := range learnerSkills {
		name := normalizeName(skill.Name)
		if name == "" {
			continue
		}
		learnerLevels[name] = proficiencyLevels[strings.ToLower(skill.Proficiency)]
	}

	analysis := &types.GapAnalysis{
		CriticalGaps:   make([]types.SkillGap, 0, len(roleSkills)),
		NiceToHaveGaps: make([]types.SkillGap, 0),
		ExistingSkills: make([]string, 0),
	}

	for _, required := range roleSkills {
		if required.Level < 0 || required.Level > maxTaxonomyLevel {
			return nil, &InvalidInputError{Field: "level", Reason: "taxonomy level must be in [0,7]"}
		}
		if required.Importance < 0 || required.Importance > 100 {
			return nil, &InvalidInputError{Field: "importance", Reason: "importance must be in [0,100]"}
		}

		currentLevel := learnerLevels[normalizeName(required.Name)]
		targetLevel := int(math.Round(required.Level / maxTaxonomyLevel * 100))

		// Hard cutoff: meeting the target means no gap, regardless of margin.
		if currentLevel >= targetLevel {
			analysis.ExistingSkills = append(analysis.ExistingSkills, required.Name)
			continue
		}

		importance := required.Importance / 100
		skillGap := types.SkillGap{
			SkillName:          required.Name,
			TaxonomyCode:       required.Code,
			Importance:         importance,
			CurrentLevel:       currentLevel,
			TargetLevel:        targetLevel,
			TaxonomyLevel:      required.Level,
			TimeToAcquireHours: baseHoursForLevel(required.Level),
			MarketDemand:       marketDemandFor(required.Category),
			CareerCapitalScore: careerCapital(importance, required.Level),
		}

		if importance >= criticalImportance {
			analysis.CriticalGaps = append(analysis.CriticalGaps, skillGap)
		} else {
			analysis.NiceToHaveGaps = append(analysis.NiceToHaveGaps, skillGap)
		}
	}

	return analysis, nil
}

// careerCapital rewards skills that are both important to the role and rare,
// using the taxonomy complexity level as a rarity proxy. Capped at 1.0.
func careerCapital(importance, level float64) float64 {
	return math.Min(importance*(level/maxTaxonomyLevel), 1.0)
}

// marketDemandFor maps a taxonomy category to a coarse market-demand score.
func marketDemandFor(category string) float64 {
	lower := strings.ToLower(category)
	for _, keyword := range highDemandCategories {
		if strings.Contains(lower, keyword) {
			return highMarketDemand
		}
	}
	return defaultMarketDemand
}

// normalizeName produces the case-insensitive matching key for a skill name.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
