package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyforge/scoring-service/internal/models"
)

func validMCQ() models.Question {
	return models.Question{
		Text:          "What is the capital of France?",
		Kind:          models.MCQ,
		Options:       []string{"London", "Berlin", "Paris", "Madrid"},
		CorrectAnswer: "Paris",
	}
}

func validShortAnswer() models.Question {
	return models.Question{
		Text:          "Explain photosynthesis",
		Kind:          models.ShortAnswer,
		CorrectAnswer: "plants convert sunlight into energy",
		Keywords:      []string{"plants", "sunlight", "energy", "convert"},
	}
}

func TestValidateBatch_Valid(t *testing.T) {
	v := NewQuestionValidator()

	assert.NoError(t, v.ValidateBatch([]models.Question{validMCQ(), validShortAnswer()}))
}

func TestValidateBatch_DefaultQuestionsAlwaysPass(t *testing.T) {
	v := NewQuestionValidator()

	// The fallback set must never be rejected, or the flow could block.
	assert.NoError(t, v.ValidateBatch(models.DefaultQuestions()))
}

func TestValidateBatch_EmptyBatch(t *testing.T) {
	v := NewQuestionValidator()

	assert.ErrorIs(t, v.ValidateBatch(nil), ErrEmptyBatch)
	assert.ErrorIs(t, v.ValidateBatch([]models.Question{}), ErrEmptyBatch)
}

func TestValidateBatch_UnknownKind(t *testing.T) {
	v := NewQuestionValidator()

	q := validShortAnswer()
	q.Kind = "True/False"

	assert.ErrorIs(t, v.ValidateBatch([]models.Question{q}), ErrUnknownKind)
}

func TestValidateBatch_MCQOptionCount(t *testing.T) {
	v := NewQuestionValidator()

	q := validMCQ()
	q.Options = q.Options[:3]

	assert.ErrorIs(t, v.ValidateBatch([]models.Question{q}), ErrOptionCount)
}

func TestValidateBatch_OneBadRecordRejectsWholeBatch(t *testing.T) {
	v := NewQuestionValidator()

	bad := validMCQ()
	bad.Options = bad.Options[:3]
	batch := []models.Question{validMCQ(), validShortAnswer(), bad}

	err := v.ValidateBatch(batch)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOptionCount)
	assert.Contains(t, err.Error(), "question 3")
}

func TestValidateBatch_MissingFields(t *testing.T) {
	v := NewQuestionValidator()

	tests := []struct {
		name    string
		mutate  func(*models.Question)
		wantErr error
	}{
		{"missing MCQ text", func(q *models.Question) { q.Text = "" }, ErrMissingText},
		{"missing MCQ answer", func(q *models.Question) { q.CorrectAnswer = "" }, ErrMissingAnswer},
		{"missing MCQ options", func(q *models.Question) { q.Options = nil }, ErrOptionCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validMCQ()
			tt.mutate(&q)
			assert.ErrorIs(t, v.ValidateBatch([]models.Question{q}), tt.wantErr)
		})
	}

	t.Run("missing short answer text", func(t *testing.T) {
		q := validShortAnswer()
		q.Text = ""
		assert.ErrorIs(t, v.ValidateBatch([]models.Question{q}), ErrMissingText)
	})

	t.Run("short answer without keywords is valid", func(t *testing.T) {
		q := validShortAnswer()
		q.Keywords = nil
		assert.NoError(t, v.ValidateBatch([]models.Question{q}))
	})
}

func TestValidator_QuestionKindTag(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateStruct(validMCQ()))

	q := validMCQ()
	q.Kind = "Essay"
	assert.Error(t, v.ValidateStruct(q))
}
