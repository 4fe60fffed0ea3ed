package types

import (
	"github.com/go-playground/validator/v10"
)

// StartInterviewRequest represents the request to start a new interview
// from raw text content.
type StartInterviewRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	Source  string `json:"source,omitempty"`
}

// RecordAnswerRequest represents the request to attach an answer recording
// to a question of an existing interview.
type RecordAnswerRequest struct {
	InterviewID string `json:"interview_id" validate:"required"`
	QuestionID  int    `json:"question_id" validate:"required,gt=0"`
}

// Validate validates the StartInterviewRequest using the validator.
func (r *StartInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RecordAnswerRequest using the validator.
func (r *RecordAnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
