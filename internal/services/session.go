package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/studyforge/scoring-service/internal/models"
	"github.com/studyforge/scoring-service/internal/scoring"
)

// TestSession owns one in-progress test: its questions, the user's answers
// so far, the start time, and (after submission) the final summary. All
// state is explicit and session-scoped; nothing is shared across sessions.
type TestSession struct {
	id           string
	questions    []models.Question
	questionSet  map[string]struct{}
	fallbackUsed bool
	startedAt    time.Time

	mu      sync.Mutex
	answers map[string]string
	summary *models.ResultSummary
}

func newTestSession(questions []models.Question, fallbackUsed bool, startedAt time.Time) *TestSession {
	questionSet := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		questionSet[q.Text] = struct{}{}
	}

	return &TestSession{
		id:           uuid.NewString(),
		questions:    questions,
		questionSet:  questionSet,
		fallbackUsed: fallbackUsed,
		startedAt:    startedAt,
		answers:      make(map[string]string),
	}
}

func (s *TestSession) ID() string           { return s.id }
func (s *TestSession) StartedAt() time.Time { return s.startedAt }
func (s *TestSession) FallbackUsed() bool   { return s.fallbackUsed }

// Questions returns a copy of the session's question list.
func (s *TestSession) Questions() []models.Question {
	questions := make([]models.Question, len(s.questions))
	copy(questions, s.questions)
	return questions
}

// SetAnswer records the user's answer for one question. Answers are mutable
// until the test is submitted.
func (s *TestSession) SetAnswer(question, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary != nil {
		return ErrTestAlreadySubmitted
	}
	if _, ok := s.questionSet[question]; !ok {
		return ErrQuestionNotFound
	}

	s.answers[question] = answer
	return nil
}

// Complete scores the test exactly once and freezes the session. The
// returned summary is immutable from here on.
func (s *TestSession) Complete(timeTaken float64) (models.ResultSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary != nil {
		return models.ResultSummary{}, ErrTestAlreadySubmitted
	}

	summary := scoring.ScoreTest(s.questions, s.answers, timeTaken)
	s.summary = &summary
	return summary, nil
}

// Results returns the frozen summary of a submitted test.
func (s *TestSession) Results() (models.ResultSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summary == nil {
		return models.ResultSummary{}, ErrTestNotSubmitted
	}
	return *s.summary, nil
}

// SessionStore keeps active test sessions in memory, keyed by session ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*TestSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*TestSession)}
}

func (st *SessionStore) Create(questions []models.Question, fallbackUsed bool, startedAt time.Time) *TestSession {
	session := newTestSession(questions, fallbackUsed, startedAt)

	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.ID()] = session
	return session
}

func (st *SessionStore) Get(id string) (*TestSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
