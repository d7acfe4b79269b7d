package server

import (
	"net/http"

	"github.com/jonsiu/career-os-sub001/internal/courses"
)

// handleGetRecommendations ranks course offerings for every gap in a stored
// analysis. Providers that return nothing simply contribute no candidates;
// the response degrades to empty course lists rather than an error.
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	analysis, ok := s.loadAnalysis(w, r)
	if !ok {
		return
	}

	recommendations, err := s.recommender.ForGaps(
		r.Context(),
		analysis.UserID.String(),
		analysis.ID.String(),
		analysis.AllGaps(),
	)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Course search failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analysis_id":     analysis.ID,
		"recommendations": recommendations,
		"disclosure":      courses.Disclosure(),
	})
}
