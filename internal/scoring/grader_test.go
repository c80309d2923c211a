package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studyforge/scoring-service/internal/models"
)

func mcqQuestion() models.Question {
	return models.Question{
		Text:          "What is the capital of France?",
		Kind:          models.MCQ,
		Options:       []string{"London", "Berlin", "Paris", "Madrid"},
		CorrectAnswer: "Paris",
		Explanation:   "Paris has been the capital since 508 AD",
	}
}

func keywordQuestion() models.Question {
	return models.Question{
		Text:          "Explain photosynthesis",
		Kind:          models.ShortAnswer,
		CorrectAnswer: "process by which plants convert sunlight into energy",
		Keywords:      []string{"plants", "sunlight", "energy", "convert"},
	}
}

func exactMatchQuestion() models.Question {
	return models.Question{
		Text:          "Who invented Python?",
		Kind:          models.ShortAnswer,
		CorrectAnswer: "guido van rossum",
	}
}

func TestGrade_MCQ(t *testing.T) {
	q := mcqQuestion()

	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
		wantScore   float64
	}{
		{"exact match", "Paris", true, 1.0},
		{"case-insensitive match", "paris", true, 1.0},
		{"surrounding whitespace", "  PARIS \n", true, 1.0},
		{"wrong option", "Berlin", false, 0.0},
		{"unanswered", "", false, 0.0},
		{"whitespace only", "   ", false, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graded := Grade(q, tt.answer)
			assert.Equal(t, tt.wantCorrect, graded.IsCorrect)
			assert.Equal(t, tt.wantScore, graded.Score)
			assert.Equal(t, models.MCQ, graded.Kind)
		})
	}
}

func TestGrade_KeywordCoverage(t *testing.T) {
	q := keywordQuestion()

	tests := []struct {
		name        string
		answer      string
		wantMatched int
		wantScore   float64
		wantCorrect bool
	}{
		{"all keywords", "plants convert sunlight into usable energy", 4, 1.0, true},
		{"three of four", "plants convert sunlight", 3, 0.75, true},
		{"two of four below threshold", "plants need sunlight", 2, 0.5, false},
		{"no keywords matched", "no idea", 0, 0.0, false},
		{"unanswered", "", 0, 0.0, false},
		{"case-insensitive keywords", "PLANTS CONVERT SUNLIGHT", 3, 0.75, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graded := Grade(q, tt.answer)
			assert.Equal(t, tt.wantMatched, graded.MatchedKeywords)
			assert.Equal(t, 4, graded.TotalKeywords)
			assert.InDelta(t, tt.wantScore, graded.Score, 1e-9)
			assert.Equal(t, tt.wantCorrect, graded.IsCorrect)
		})
	}
}

func TestGrade_ThresholdIsInclusive(t *testing.T) {
	q := keywordQuestion()
	q.Keywords = []string{"plants", "sunlight", "energy", "convert", "chlorophyll"}

	// 3 of 5 keywords is exactly 0.6 coverage, which counts as correct.
	graded := Grade(q, "plants convert sunlight")
	assert.Equal(t, 3, graded.MatchedKeywords)
	assert.InDelta(t, 0.6, graded.Score, 1e-9)
	assert.True(t, graded.IsCorrect)
}

func TestGrade_PartialCreditKeptWhenIncorrect(t *testing.T) {
	graded := Grade(keywordQuestion(), "plants need sunlight")

	assert.False(t, graded.IsCorrect)
	assert.InDelta(t, 0.5, graded.Score, 1e-9)
}

func TestGrade_ExactMatchFallback(t *testing.T) {
	q := exactMatchQuestion()

	tests := []struct {
		name        string
		answer      string
		wantCorrect bool
		wantScore   float64
	}{
		{"case-insensitive full match", "Guido Van Rossum", true, 1.0},
		{"partial answer", "Guido", false, 0.0},
		{"unanswered", "", false, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			graded := Grade(q, tt.answer)
			assert.Equal(t, tt.wantCorrect, graded.IsCorrect)
			assert.Equal(t, tt.wantScore, graded.Score)
			assert.Equal(t, 0, graded.TotalKeywords)
		})
	}
}

func TestGrade_TrimsKeywordsBeforeMatching(t *testing.T) {
	q := keywordQuestion()
	q.Keywords = []string{"  Plants ", " SUNLIGHT"}

	graded := Grade(q, "plants love sunlight")
	assert.Equal(t, 2, graded.MatchedKeywords)
	assert.True(t, graded.IsCorrect)
}
