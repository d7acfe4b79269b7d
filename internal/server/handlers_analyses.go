package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonsiu/career-os-sub001/internal/gap"
	"github.com/jonsiu/career-os-sub001/internal/taxonomy"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// handleCreateAnalysis runs a gap analysis for a user against a target role
// and persists the result when a store is configured.
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.CreateAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if s.taxonomy == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No taxonomy configured")
		return
	}

	roleSkills, err := s.taxonomy.RoleSkills(r.Context(), req.RoleID)
	if err != nil {
		var notFound *taxonomy.NotFoundError
		if errors.As(err, &notFound) {
			s.errorResponse(w, http.StatusNotFound, "Role not found: "+req.RoleID)
			return
		}
		s.errorResponse(w, http.StatusBadGateway, "Taxonomy lookup failed: "+err.Error())
		return
	}

	// No history is a valid state; the learner is assumed average.
	velocity := gap.DefaultLearningVelocity
	if s.store != nil {
		history, err := s.store.SkillRecords(r.Context(), userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		velocity = gap.CalculateLearningVelocity(history)
	}

	weeklyHours := req.WeeklyHours
	if weeklyHours == 0 {
		weeklyHours = s.weeklyHours
	}

	plan, err := gap.BuildPlan(req.LearnerSkills, roleSkills, weeklyHours, velocity)
	if err != nil {
		var invalid *gap.InvalidInputError
		if errors.As(err, &invalid) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	plan.ID = uuid.New()
	plan.UserID = userID
	plan.RoleID = req.RoleID
	plan.CreatedAt = time.Now().UTC()

	if s.store != nil {
		id, err := s.store.SaveAnalysis(r.Context(), plan)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		plan.ID = id
	}

	s.jsonResponse(w, http.StatusCreated, plan)
}

// handleGetAnalysis retrieves a stored analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.loadAnalysis(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleGetRoadmap retrieves only the phased roadmap of a stored analysis.
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.loadAnalysis(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis_id": analysis.ID,
		"roadmap":     analysis.Roadmap,
	})
}

// handleListAnalyses retrieves a user's recent analyses, newest first.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No analysis store configured")
		return
	}

	analyses, err := s.store.ListAnalyses(r.Context(), userID, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if analyses == nil {
		analyses = []types.Analysis{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"user_id":  userID,
		"analyses": analyses,
	})
}

// loadAnalysis parses the path ID and fetches the analysis, writing the error
// response itself when the lookup fails.
func (s *Server) loadAnalysis(w http.ResponseWriter, r *http.Request) (*types.Analysis, bool) {
	analysisID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return nil, false
	}

	if s.store == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No analysis store configured")
		return nil, false
	}

	analysis, err := s.store.GetAnalysis(r.Context(), analysisID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return nil, false
	}
	return analysis, true
}
