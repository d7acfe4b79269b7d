package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonsiu/career-os-sub001/internal/courses"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// handleTrackClick stamps an affiliate click event and hands it to the
// configured analytics sink.
func (s *Server) handleTrackClick(w http.ResponseWriter, r *http.Request) {
	var req types.TrackClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	event := courses.TrackClick(types.ClickEvent{
		UserID:       req.UserID,
		AnalysisID:   req.AnalysisID,
		SkillName:    req.SkillName,
		Provider:     req.Provider,
		CourseTitle:  req.CourseTitle,
		AffiliateURL: req.AffiliateURL,
	})

	if err := s.sink.Record(r.Context(), event); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to record click: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, event)
}

// handleDisclosure returns the affiliate disclosure text.
func (s *Server) handleDisclosure(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"disclosure": courses.Disclosure()})
}
