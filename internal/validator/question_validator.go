package validator

import (
	"errors"
	"fmt"

	"github.com/studyforge/scoring-service/internal/models"
)

// Batch validation failures. Callers are expected to treat any of these as
// "discard the batch and fall back to models.DefaultQuestions()" rather than
// surfacing a hard failure to the user mid-test.
var (
	ErrEmptyBatch    = errors.New("question batch cannot be empty")
	ErrUnknownKind   = errors.New("unknown question kind")
	ErrMissingText   = errors.New("question text is required")
	ErrMissingAnswer = errors.New("correct answer is required")
	ErrOptionCount   = errors.New("MCQ must have exactly 4 options")
)

// QuestionValidator gates generated question batches before scoring.
// A batch is all-or-nothing: one bad record invalidates the whole batch and
// the scoring engine never partially trusts it.
type QuestionValidator struct{}

func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateBatch checks every question in the batch. It is a pure predicate
// with no side effects; nil means the batch is safe to score.
func (v *QuestionValidator) ValidateBatch(questions []models.Question) error {
	if len(questions) == 0 {
		return ErrEmptyBatch
	}

	for i, q := range questions {
		if err := v.validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}

	return nil
}

func (v *QuestionValidator) validateQuestion(q models.Question) error {
	switch q.Kind {
	case models.MCQ:
		if q.Text == "" {
			return ErrMissingText
		}
		if q.CorrectAnswer == "" {
			return ErrMissingAnswer
		}
		if len(q.Options) != 4 {
			return fmt.Errorf("%w, got %d", ErrOptionCount, len(q.Options))
		}
	case models.ShortAnswer:
		if q.Text == "" {
			return ErrMissingText
		}
		if q.CorrectAnswer == "" {
			return ErrMissingAnswer
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, q.Kind)
	}

	return nil
}
