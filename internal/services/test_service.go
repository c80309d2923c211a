package services

import (
	"context"
	"time"

	"github.com/studyforge/scoring-service/internal/attempts"
	"github.com/studyforge/scoring-service/internal/cache"
	"github.com/studyforge/scoring-service/internal/events"
	"github.com/studyforge/scoring-service/internal/leaderboard"
	"github.com/studyforge/scoring-service/internal/models"
	"github.com/studyforge/scoring-service/internal/repositories"
	"github.com/studyforge/scoring-service/internal/utils"
	"github.com/studyforge/scoring-service/internal/validator"
)

// How many entries to mirror into the shared leaderboard snapshot.
const leaderboardSnapshotSize = 10

const leaderboardSnapshotTTL = 24 * time.Hour

// StartedTest is what the UI gets back when a test begins.
type StartedTest struct {
	SessionID    string            `json:"session_id"`
	Questions    []models.Question `json:"questions"`
	FallbackUsed bool              `json:"fallback_used"`
}

// TestService orchestrates the full test flow: gate a generated batch,
// collect answers, score on submission, then fan out to the leaderboard,
// attempt history and event stream. Recording failures never abort the
// scoring pipeline; the computed summary is always returned.
type TestService interface {
	StartTest(ctx context.Context, questions []models.Question) (*StartedTest, error)
	SubmitAnswer(ctx context.Context, sessionID, question, answer string) error
	SubmitTest(ctx context.Context, sessionID, userID string, timeTaken *float64) (models.ResultSummary, error)
	Results(ctx context.Context, sessionID string) (models.ResultSummary, error)
	TopEntries(ctx context.Context, n int) []leaderboard.Entry
	AttemptHistory(ctx context.Context, filters repositories.AttemptFilters) ([]*models.AttemptRecord, int64, error)
}

type testService struct {
	store     *SessionStore
	validator *validator.Validator
	board     *leaderboard.Board
	recorder  *attempts.Recorder
	repo      repositories.AttemptRepository
	cache     cache.LeaderboardCache
	publisher events.EventPublisher
	logger    utils.Logger
	now       func() time.Time
}

func NewTestService(
	store *SessionStore,
	v *validator.Validator,
	board *leaderboard.Board,
	recorder *attempts.Recorder,
	repo repositories.AttemptRepository,
	lbCache cache.LeaderboardCache,
	publisher events.EventPublisher,
	logger utils.Logger,
) TestService {
	return &testService{
		store:     store,
		validator: v,
		board:     board,
		recorder:  recorder,
		repo:      repo,
		cache:     lbCache,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// StartTest gates the generated batch and opens a session. A batch that
// fails validation is discarded wholesale and the built-in fallback set is
// substituted, so starting a test never fails on bad generator output.
func (s *testService) StartTest(ctx context.Context, questions []models.Question) (*StartedTest, error) {
	fallbackUsed := false
	if err := s.validator.Question().ValidateBatch(questions); err != nil {
		s.logger.Warn("generated question batch rejected, substituting fallback set", "error", err)
		questions = models.DefaultQuestions()
		fallbackUsed = true
	}

	session := s.store.Create(questions, fallbackUsed, s.now())

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventTestStarted, events.TestStartedEvent{
		SessionID:     session.ID(),
		QuestionCount: len(questions),
		FallbackUsed:  fallbackUsed,
	})); err != nil {
		s.logger.Warn("failed to publish test started event", "error", err)
	}

	return &StartedTest{
		SessionID:    session.ID(),
		Questions:    session.Questions(),
		FallbackUsed: fallbackUsed,
	}, nil
}

func (s *testService) SubmitAnswer(ctx context.Context, sessionID, question, answer string) error {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return ErrSessionNotFound
	}
	return session.SetAnswer(question, answer)
}

// SubmitTest scores the session once and fans out the result. timeTaken
// overrides the measured elapsed time when the caller supplies its own
// measurement (seconds, non-negative, enforced at the API boundary).
func (s *testService) SubmitTest(ctx context.Context, sessionID, userID string, timeTaken *float64) (models.ResultSummary, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return models.ResultSummary{}, ErrSessionNotFound
	}

	elapsed := s.now().Sub(session.StartedAt()).Seconds()
	if timeTaken != nil {
		elapsed = *timeTaken
	}
	if elapsed < 0 {
		elapsed = 0
	}

	summary, err := session.Complete(elapsed)
	if err != nil {
		return models.ResultSummary{}, err
	}

	s.board.Record(summary.TimeTaken, summary.Score)
	if err := s.cache.SetTop(ctx, s.board.Top(leaderboardSnapshotSize), leaderboardSnapshotTTL); err != nil {
		s.logger.Warn("failed to mirror leaderboard snapshot", "error", err)
	}

	if _, err := s.recorder.RecordAttempt(ctx, summary, userID, s.now()); err != nil {
		// Best-effort telemetry: warn and keep the summary.
		s.logger.Warn("failed to record attempt", "error", err, "user", userID)
	}

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventAttemptGraded, events.AttemptGradedEvent{
		SessionID: sessionID,
		UserID:    userID,
		Score:     summary.Score,
		Total:     summary.Total,
		Accuracy:  summary.Accuracy,
		TimeTaken: summary.TimeTaken,
	})); err != nil {
		s.logger.Warn("failed to publish attempt graded event", "error", err)
	}

	return summary, nil
}

func (s *testService) Results(ctx context.Context, sessionID string) (models.ResultSummary, error) {
	session, ok := s.store.Get(sessionID)
	if !ok {
		return models.ResultSummary{}, ErrSessionNotFound
	}
	return session.Results()
}

// TopEntries reads from the in-process board, falling back to the shared
// snapshot when this instance has not scored anything yet.
func (s *testService) TopEntries(ctx context.Context, n int) []leaderboard.Entry {
	if entries := s.board.Top(n); len(entries) > 0 {
		return entries
	}

	cached, err := s.cache.GetTop(ctx)
	if err != nil {
		s.logger.Warn("failed to read leaderboard snapshot", "error", err)
		return []leaderboard.Entry{}
	}
	if n < len(cached) {
		cached = cached[:n]
	}
	return cached
}

func (s *testService) AttemptHistory(ctx context.Context, filters repositories.AttemptFilters) ([]*models.AttemptRecord, int64, error) {
	return s.repo.List(ctx, filters)
}
