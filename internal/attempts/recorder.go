package attempts

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/studyforge/scoring-service/internal/models"
	"github.com/studyforge/scoring-service/internal/repositories"
	"github.com/studyforge/scoring-service/internal/utils"
	"gorm.io/datatypes"
)

// RecordingError is the single error type the recorder surfaces. Callers
// downgrade it to a warning; a failed recording never aborts the scoring
// flow or loses the summary already computed.
type RecordingError struct {
	Reason string
	Err    error
}

func (e *RecordingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("attempt recording failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("attempt recording failed: %s", e.Reason)
}

func (e *RecordingError) Unwrap() error {
	return e.Err
}

// Recorder converts result summaries into normalized attempt records and
// appends them to the history. Appends are independent: recording the same
// summary twice yields two entries, each with its own timestamp.
type Recorder struct {
	repo   repositories.AttemptRepository
	logger utils.Logger
}

func NewRecorder(repo repositories.AttemptRepository, logger utils.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

// RecordAttempt normalizes the summary and appends it. userID defaults to
// models.AnonymousUser when empty.
func (r *Recorder) RecordAttempt(ctx context.Context, summary models.ResultSummary, userID string, now time.Time) (*models.AttemptRecord, error) {
	record, err := NewAttemptRecord(summary, userID, now)
	if err != nil {
		return nil, err
	}

	if err := r.repo.Create(ctx, record); err != nil {
		return nil, &RecordingError{Reason: "could not append attempt", Err: err}
	}

	r.logger.Debug("attempt recorded",
		"user", record.UserID,
		"score", record.Score,
		"accuracy", record.Accuracy)
	return record, nil
}

// NewAttemptRecord builds the normalized snapshot without persisting it.
func NewAttemptRecord(summary models.ResultSummary, userID string, now time.Time) (*models.AttemptRecord, error) {
	if userID == "" {
		userID = models.AnonymousUser
	}

	if err := checkFinite("score", summary.Score); err != nil {
		return nil, err
	}
	if err := checkFinite("time_taken", summary.TimeTaken); err != nil {
		return nil, err
	}
	if err := checkFinite("correct_short", summary.CorrectShort); err != nil {
		return nil, err
	}
	if err := checkFinite("accuracy", summary.Accuracy); err != nil {
		return nil, err
	}

	breakdown, err := json.Marshal(models.AttemptBreakdown{
		CorrectAnswers:   summary.CorrectAnswers,
		IncorrectAnswers: summary.IncorrectAnswers,
	})
	if err != nil {
		return nil, &RecordingError{Reason: "could not serialize breakdown", Err: err}
	}

	return &models.AttemptRecord{
		UserID:       userID,
		Timestamp:    now.Format(models.AttemptTimestampLayout),
		Score:        summary.Score,
		TimeTaken:    summary.TimeTaken,
		CorrectMCQs:  summary.CorrectMCQs,
		TotalMCQs:    summary.TotalMCQs,
		CorrectShort: summary.CorrectShort,
		TotalShort:   summary.TotalShort,
		Accuracy:     summary.Accuracy,
		Breakdown:    datatypes.JSON(breakdown),
	}, nil
}

func checkFinite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &RecordingError{Reason: fmt.Sprintf("%s is not a finite number", field)}
	}
	return nil
}
