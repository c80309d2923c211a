package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnonymousUser is recorded when an attempt is made without authentication.
const AnonymousUser = "Anonymous"

// AttemptTimestampLayout is the human-readable timestamp attached to each
// attempt record, alongside the machine CreatedAt column.
const AttemptTimestampLayout = "2006-01-02 15:04:05"

// AttemptRecord is a normalized snapshot of a ResultSummary persisted for
// historical reporting. It is best-effort telemetry, not a ledger: a failed
// append is reported as a warning and skipped.
type AttemptRecord struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	UserID       string  `json:"user" gorm:"size:128;index;not null"`
	Timestamp    string  `json:"timestamp" gorm:"size:32;not null"`
	Score        float64 `json:"score"`
	TimeTaken    float64 `json:"time_taken"`
	CorrectMCQs  int     `json:"correct_mcqs"`
	TotalMCQs    int     `json:"total_mcqs"`
	CorrectShort float64 `json:"correct_short"`
	TotalShort   int     `json:"total_short"`
	Accuracy     float64 `json:"accuracy"`

	// Breakdown stores the correct/incorrect GradedAnswer lists as jsonb.
	Breakdown datatypes.JSON `json:"breakdown,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

// AttemptBreakdown is the shape serialized into AttemptRecord.Breakdown.
type AttemptBreakdown struct {
	CorrectAnswers   []GradedAnswer `json:"correct_answers"`
	IncorrectAnswers []GradedAnswer `json:"incorrect_answers"`
}
