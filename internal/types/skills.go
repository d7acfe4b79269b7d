// Package types provides type definitions for structured data used throughout the CareerOS skill-gap engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Proficiency tiers for learner skills. Each tier maps to a fixed numeric
// level on the 0-100 scale used by gap analysis.
const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

// LearnerSkill is a skill a learner already holds, at a named proficiency tier.
type LearnerSkill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"` // beginner|intermediate|advanced|expert
}

// RoleSkill is a single requirement from an occupational taxonomy entry for a
// target role.
type RoleSkill struct {
	Name       string  `json:"name"`
	Code       string  `json:"code,omitempty"`     // external taxonomy code; empty when the skill does not resolve
	Importance float64 `json:"importance"`         // 1-100
	Level      float64 `json:"level"`              // 0-7 taxonomy complexity level
	Category   string  `json:"category,omitempty"` // taxonomy category text (e.g. "Technical Skills")
}

// Skill history statuses used for learning-velocity calculation.
const (
	SkillStatusMastered   = "mastered"
	SkillStatusPracticing = "practicing"
)

// SkillRecord is a historical record of a learner working on a skill.
// TimeSpentHours and EstimatedHoursToTarget feed the learning-velocity ratio.
type SkillRecord struct {
	SkillName              string  `json:"skill_name"`
	Status                 string  `json:"status"`
	Progress               int     `json:"progress"` // 0-100
	TimeSpentHours         float64 `json:"time_spent_hours"`
	EstimatedHoursToTarget float64 `json:"estimated_hours_to_target"`
}
