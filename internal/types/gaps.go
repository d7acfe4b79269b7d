package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillGap is a deficiency between a learner's current competency and a
// target role's requirement. Immutable once produced by gap analysis.
type SkillGap struct {
	SkillName          string  `json:"skill_name"`
	TaxonomyCode       string  `json:"taxonomy_code,omitempty"` // empty when the skill has no taxonomy entry
	Importance         float64 `json:"importance"`              // 0-1
	CurrentLevel       int     `json:"current_level"`           // 0-100
	TargetLevel        int     `json:"target_level"`            // 0-100; always > CurrentLevel for a recorded gap
	TaxonomyLevel      float64 `json:"taxonomy_level"`          // 0-7 complexity level from the role requirement
	TimeToAcquireHours float64 `json:"time_to_acquire_hours"`
	MarketDemand       float64 `json:"market_demand"`        // 0-1
	CareerCapitalScore float64 `json:"career_capital_score"` // 0-1, importance weighted by rarity
}

// PrioritizedSkillGap is a SkillGap with its computed priority score and, once
// planned, its timeline estimate attached.
type PrioritizedSkillGap struct {
	SkillGap
	PriorityScore float64           `json:"priority_score"`
	Timeline      *TimelineEstimate `json:"timeline,omitempty"`
}

// Complexity tiers returned by timeline estimation.
const (
	TierBasic        = "basic"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
)

// TimelineEstimate is a derived estimate of the effort to close a gap. It is
// recomputed on demand and never stored with the gap itself.
type TimelineEstimate struct {
	EstimatedHours  int    `json:"estimated_hours"`
	WeeksToComplete int    `json:"weeks_to_complete"`
	ComplexityTier  string `json:"complexity_tier"` // basic|intermediate|advanced
}

// RoadmapPhase is a time-ordered bucket of gaps. Phases partition a
// prioritized gap list into contiguous thirds by rank.
type RoadmapPhase struct {
	PhaseNumber            int      `json:"phase_number"`
	SkillNames             []string `json:"skill_names"`
	EstimatedDurationWeeks int      `json:"estimated_duration_weeks"`
	MilestoneTitle         string   `json:"milestone_title"`
}

// GapAnalysis partitions a target role's skills against a learner's current
// skills. Every target skill appears in exactly one of the three lists.
type GapAnalysis struct {
	CriticalGaps   []SkillGap `json:"critical_gaps"`
	NiceToHaveGaps []SkillGap `json:"nice_to_have_gaps"`
	ExistingSkills []string   `json:"existing_skills"`
}

// Analysis is a persisted gap analysis for a user and target role, including
// prioritized gaps and the generated roadmap.
type Analysis struct {
	ID             uuid.UUID             `json:"id"`
	UserID         uuid.UUID             `json:"user_id"`
	RoleID         string                `json:"role_id"`
	WeeklyHours    float64               `json:"weekly_availability_hours"`
	Velocity       float64               `json:"learning_velocity"`
	CriticalGaps   []PrioritizedSkillGap `json:"critical_gaps"`
	NiceToHaveGaps []PrioritizedSkillGap `json:"nice_to_have_gaps"`
	ExistingSkills []string              `json:"existing_skills"`
	Roadmap        []RoadmapPhase        `json:"roadmap"`
	CreatedAt      time.Time             `json:"created_at"`
}

// AllGaps returns the analysis' gaps, critical first, preserving rank order
// within each bucket.
func (a *Analysis) AllGaps() []PrioritizedSkillGap {
	gaps := make([]PrioritizedSkillGap, 0, len(a.CriticalGaps)+len(a.NiceToHaveGaps))
	gaps = append(gaps, a.CriticalGaps...)
	gaps = append(gaps, a.NiceToHaveGaps...)
	return gaps
}
