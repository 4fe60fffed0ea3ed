package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/types"
)

// ---------------------------------------------------------------------
// Upload Handlers
// ---------------------------------------------------------------------

// handleUploadResume accepts a resume or job-description file, validates
// and normalizes it, and starts an interview from the extracted text.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(ingestion.MaxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	source := r.FormValue("source")
	if source == "" {
		source = types.SourceResume
	}

	if err := ingestion.ValidateUpload(header.Filename, header.Size); err != nil {
		s.serviceError(w, err)
		return
	}

	// The declared size is client-controlled; enforce the ceiling on the
	// actual bytes as well.
	data, err := io.ReadAll(io.LimitReader(file, ingestion.MaxUploadBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	if int64(len(data)) > ingestion.MaxUploadBytes {
		s.serviceError(w, &ingestion.ErrFileTooLarge{Size: int64(len(data))})
		return
	}

	content := ingestion.TruncateContent(ingestion.CleanText(ingestion.DecodeText(data)))

	result, err := s.service.StartInterview(r.Context(), content, source)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleUploadAnswer accepts a video answer for one question of an
// existing interview, stores the blob, and records the answer reference.
func (s *Server) handleUploadAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	questionID, err := strconv.Atoi(r.FormValue("question_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid question ID")
		return
	}

	req := types.RecordAnswerRequest{
		InterviewID: r.FormValue("interview_id"),
		QuestionID:  questionID,
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Interview ID and question ID are required")
		return
	}

	// Verify the interview and question exist before writing any bytes.
	if _, err := s.service.GetQuestion(r.Context(), req.InterviewID, req.QuestionID); err != nil {
		s.serviceError(w, err)
		return
	}

	video, _, err := r.FormFile("video")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Video file is required")
		return
	}
	defer video.Close()

	path, err := s.media.SaveAnswer(req.InterviewID, req.QuestionID, video)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Error saving video: "+err.Error())
		return
	}

	if _, err := s.service.RecordAnswer(r.Context(), req.InterviewID, req.QuestionID, path); err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":       "success",
		"interview_id": req.InterviewID,
		"question_id":  req.QuestionID,
		"saved_path":   path,
	})
}
