package server

import (
	"net/http"

	"github.com/jonathan/interview-coach/internal/ingestion"
	"github.com/jonathan/interview-coach/internal/interview"
	"github.com/jonathan/interview-coach/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *store.ErrInterviewNotFound, *store.ErrQuestionNotFound:
		return http.StatusNotFound
	case *interview.ErrValidation:
		return http.StatusBadRequest
	case *ingestion.ErrUnsupportedFileType, *ingestion.ErrFileTooLarge:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
