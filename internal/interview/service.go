// Package interview provides the business logic for interview sessions:
// profile extraction, question synthesis, and answer bookkeeping on top of
// the in-memory session store.
package interview

import (
	"context"
	"time"

	"github.com/jonathan/interview-coach/internal/extraction"
	"github.com/jonathan/interview-coach/internal/store"
	"github.com/jonathan/interview-coach/internal/synthesis"
	"github.com/jonathan/interview-coach/internal/types"
	"go.uber.org/zap"
)

// Service wires the extraction and synthesis pipeline to the session store.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService creates a Service. A nil logger is replaced with a no-op one.
func NewService(sessions *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: sessions, logger: logger}
}

// StartResult is the response to StartInterview.
type StartResult struct {
	InterviewID    string          `json:"interview_id"`
	TotalQuestions int             `json:"total_questions"`
	FirstQuestion  *types.Question `json:"first_question"`
}

// QuestionResult is the response to GetQuestion.
type QuestionResult struct {
	InterviewID     string         `json:"interview_id"`
	CurrentQuestion types.Question `json:"current_question"`
	TotalQuestions  int            `json:"total_questions"`
	HasNext         bool           `json:"has_next"`
}

// Summary is the response to GetSummary.
type Summary struct {
	InterviewID       string               `json:"interview_id"`
	Source            string               `json:"source"`
	CreatedAt         time.Time            `json:"created_at"`
	TotalQuestions    int                  `json:"total_questions"`
	QuestionsAnswered int                  `json:"questions_answered"`
	Questions         []types.Question     `json:"questions"`
	Answers           map[int]types.Answer `json:"answers"`
}

// StartInterview extracts a profile from content, synthesizes the question
// list for the given source, and stores a new session. Empty synthesis
// output fails with ErrValidation.
func (s *Service) StartInterview(ctx context.Context, content, source string) (*StartResult, error) {
	if source == "" {
		source = types.SourceResume
	}

	profile := extraction.ExtractProfile(content)
	questions := synthesis.ForSource(profile, source)
	if len(questions) == 0 {
		return nil, &ErrValidation{Field: "content", Message: "failed to generate questions from the provided content"}
	}

	session := s.store.Create(source, content, questions)

	s.logger.Info("interview started",
		zap.String("interview_id", session.ID),
		zap.String("source", source),
		zap.Int("content_chars", len(content)),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("experiences", len(profile.Experiences)),
		zap.Int("projects", len(profile.Projects)),
		zap.Int("questions", len(questions)),
	)

	return &StartResult{
		InterviewID:    session.ID,
		TotalQuestions: len(session.Questions),
		FirstQuestion:  &session.Questions[0],
	}, nil
}

// GetQuestion returns one question of an interview by its ID.
func (s *Service) GetQuestion(ctx context.Context, interviewID string, questionID int) (*QuestionResult, error) {
	session, err := s.store.Get(interviewID)
	if err != nil {
		return nil, err
	}

	for _, q := range session.Questions {
		if q.ID == questionID {
			return &QuestionResult{
				InterviewID:     interviewID,
				CurrentQuestion: q,
				TotalQuestions:  len(session.Questions),
				HasNext:         questionID < len(session.Questions),
			}, nil
		}
	}
	return nil, &store.ErrQuestionNotFound{InterviewID: interviewID, QuestionID: questionID}
}

// RecordAnswer attaches an answer media reference to a question, replacing
// any earlier answer for the same question ID.
func (s *Service) RecordAnswer(ctx context.Context, interviewID string, questionID int, answerRef string) (*types.InterviewSession, error) {
	answer := types.Answer{VideoPath: answerRef, UploadedAt: time.Now()}
	session, err := s.store.RecordAnswer(interviewID, questionID, answer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("answer recorded",
		zap.String("interview_id", interviewID),
		zap.Int("question_id", questionID),
		zap.String("video_path", answerRef),
	)
	return session, nil
}

// GetSummary returns the full interview state: questions, answers, counts.
func (s *Service) GetSummary(ctx context.Context, interviewID string) (*Summary, error) {
	session, err := s.store.Get(interviewID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		InterviewID:       session.ID,
		Source:            session.Source,
		CreatedAt:         session.CreatedAt,
		TotalQuestions:    len(session.Questions),
		QuestionsAnswered: len(session.Answers),
		Questions:         session.Questions,
		Answers:           session.Answers,
	}, nil
}
