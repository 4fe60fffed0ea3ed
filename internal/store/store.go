// Package store holds interview sessions in process memory. The store
// exclusively owns all session records: callers receive snapshots and all
// mutation goes through RecordAnswer.
//
// Sessions are never evicted; process-lifetime retention is an accepted
// limitation of this non-durable design.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/types"
)

// excerptLen is how much of the submitted text is kept on the session for
// later reference.
const excerptLen = 500

// Store is a mutex-guarded map of interview sessions. Safe for concurrent
// use by request handlers.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*types.InterviewSession
}

// New creates an empty session store. Construct once at process start and
// pass by reference to request handlers.
func New() *Store {
	return &Store{sessions: make(map[string]*types.InterviewSession)}
}

// Create generates a new session ID, stores the session, and returns a
// snapshot of it. The question list is fixed from this point on.
func (s *Store) Create(source, content string, questions []types.Question) *types.InterviewSession {
	now := time.Now()
	session := &types.InterviewSession{
		ID:             newSessionID(now),
		Source:         source,
		ContentExcerpt: truncateRunes(content, excerptLen),
		Questions:      questions,
		Answers:        make(map[int]types.Answer),
		CreatedAt:      now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return snapshot(session)
}

// Get returns a snapshot of the session, or ErrInterviewNotFound.
func (s *Store) Get(id string) (*types.InterviewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, &ErrInterviewNotFound{ID: id}
	}
	return snapshot(session), nil
}

// RecordAnswer stores an answer reference for a question, overwriting any
// previous answer for that question ID, and returns the updated session
// snapshot. The question ID must belong to the session's question list.
func (s *Store) RecordAnswer(id string, questionID int, answer types.Answer) (*types.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, &ErrInterviewNotFound{ID: id}
	}
	if !hasQuestion(session.Questions, questionID) {
		return nil, &ErrQuestionNotFound{InterviewID: id, QuestionID: questionID}
	}

	session.Answers[questionID] = answer
	return snapshot(session), nil
}

// Count returns the number of stored sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// newSessionID builds a time-prefixed, collision-resistant identifier like
// int_1718000000_9f2a4c1b. Collisions are treated as practically impossible.
func newSessionID(now time.Time) string {
	u := uuid.New()
	return fmt.Sprintf("int_%d_%x", now.Unix(), u[:4])
}

func hasQuestion(questions []types.Question, id int) bool {
	for _, q := range questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// snapshot copies a session so callers cannot mutate stored state. The
// question slice is shared deliberately: questions are immutable after
// creation.
func snapshot(session *types.InterviewSession) *types.InterviewSession {
	answers := make(map[int]types.Answer, len(session.Answers))
	for id, a := range session.Answers {
		answers[id] = a
	}
	copied := *session
	copied.Answers = answers
	return &copied
}

// truncateRunes shortens s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
