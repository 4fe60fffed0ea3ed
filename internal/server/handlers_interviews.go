package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/interview-coach/internal/types"
)

// ---------------------------------------------------------------------
// Interview Handlers
// ---------------------------------------------------------------------

// handleStartInterview starts a new interview session from raw text
// submitted as a form field.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		// Fall back to URL-encoded form bodies
		if err := r.ParseForm(); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	req := types.StartInterviewRequest{
		Content: r.FormValue("content"),
		Source:  r.FormValue("source"),
	}
	if req.Source == "" {
		req.Source = types.SourceResume
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Content is required")
		return
	}

	result, err := s.service.StartInterview(r.Context(), req.Content, req.Source)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetQuestion returns a single question of an interview.
func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	interviewID := r.PathValue("id")
	questionID, err := strconv.Atoi(r.PathValue("question_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	result, err := s.service.GetQuestion(r.Context(), interviewID, questionID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleSummary returns the interview's questions, answers, and counts.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	interviewID := r.PathValue("id")

	summary, err := s.service.GetSummary(r.Context(), interviewID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, summary)
}
