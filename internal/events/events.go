package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the notification events this service emits.
type EventType string

const (
	EventTestStarted   EventType = "test.started"
	EventAttemptGraded EventType = "attempt.graded"
)

// Event is the envelope published for every event type.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Data      interface{} `json:"data"`
}

// NewEvent wraps a payload in a fresh envelope.
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    "scoring-service",
		Version:   "1.0",
		Data:      data,
	}
}

// TestStartedEvent is emitted when a test session is created.
type TestStartedEvent struct {
	SessionID     string `json:"session_id"`
	QuestionCount int    `json:"question_count"`
	FallbackUsed  bool   `json:"fallback_used"`
}

// AttemptGradedEvent is emitted after a test submission has been scored.
type AttemptGradedEvent struct {
	SessionID string  `json:"session_id"`
	UserID    string  `json:"user_id"`
	Score     float64 `json:"score"`
	Total     int     `json:"total"`
	Accuracy  float64 `json:"accuracy"`
	TimeTaken float64 `json:"time_taken"`
}
