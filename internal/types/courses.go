package types

import (
	"time"

	"github.com/google/uuid"
)

// PriceFree is the literal price value course providers use for free
// offerings. Price scoring is binary on this value, not graduated by amount.
const PriceFree = "Free"

// Course is an external learning offering returned by a course-search
// provider. AffiliateURL is derived from URL plus a tracking tag; the
// original URL is never mutated.
type Course struct {
	Title          string   `json:"title"`
	Provider       string   `json:"provider"`
	URL            string   `json:"url"`
	AffiliateURL   string   `json:"affiliate_url,omitempty"`
	Price          string   `json:"price"`  // "Free" or a display amount like "$49.99"
	Rating         float64  `json:"rating"` // 0-5
	ReviewCount    int      `json:"review_count"`
	EstimatedHours float64  `json:"estimated_hours"`
	Level          string   `json:"level,omitempty"`
	Topics         []string `json:"topics,omitempty"`
	IsQuickWin     bool     `json:"is_quick_win"`
}

// CourseRecommendation is the ranked short list of courses for one skill gap.
type CourseRecommendation struct {
	SkillName          string   `json:"skill_name"`
	SkillPriorityScore float64  `json:"skill_priority_score"`
	Courses            []Course `json:"courses"`
}

// ClickEvent records an outbound affiliate click. The engine only constructs
// and stamps the event; persistence belongs to an analytics sink.
type ClickEvent struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	AnalysisID   string    `json:"analysis_id"`
	SkillName    string    `json:"skill_name"`
	Provider     string    `json:"provider"`
	CourseTitle  string    `json:"course_title"`
	AffiliateURL string    `json:"affiliate_url"`
	ClickedAt    time.Time `json:"clicked_at"`
}
