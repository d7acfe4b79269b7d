package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateAnalysisRequest is the payload for running a gap analysis.
type CreateAnalysisRequest struct {
	UserID        string         `json:"user_id" validate:"required,uuid"`
	RoleID        string         `json:"role_id" validate:"required"`
	LearnerSkills []LearnerSkill `json:"learner_skills" validate:"dive"`
	WeeklyHours   float64        `json:"weekly_availability_hours" validate:"omitempty,gt=0"` // omitted falls back to the configured default
}

// TrackClickRequest is the payload for recording an affiliate click.
type TrackClickRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	AnalysisID   string `json:"analysis_id" validate:"required"`
	SkillName    string `json:"skill_name" validate:"required"`
	Provider     string `json:"provider,omitempty"`
	CourseTitle  string `json:"course_title,omitempty"`
	AffiliateURL string `json:"affiliate_url" validate:"required,url"`
}

// Validate validates the CreateAnalysisRequest using the validator.
func (r *CreateAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TrackClickRequest using the validator.
func (r *TrackClickRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
