package store

import "fmt"

// ErrInterviewNotFound indicates the interview ID is unknown to the store.
type ErrInterviewNotFound struct {
	ID string
}

func (e *ErrInterviewNotFound) Error() string {
	return fmt.Sprintf("interview not found: %s", e.ID)
}

// ErrQuestionNotFound indicates the question ID does not belong to the
// interview's question list.
type ErrQuestionNotFound struct {
	InterviewID string
	QuestionID  int
}

func (e *ErrQuestionNotFound) Error() string {
	return fmt.Sprintf("question %d not found in interview %s", e.QuestionID, e.InterviewID)
}
