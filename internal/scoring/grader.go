package scoring

import (
	"strings"

	"github.com/studyforge/scoring-service/internal/models"
)

// KeywordThreshold is the keyword-coverage fraction at or above which a
// keyword-graded short answer counts as correct. Fixed policy constant.
const KeywordThreshold = 0.6

// Grade computes correctness and partial credit for one question.
//
// The question must already have passed validator.ValidateBatch. The user
// answer may be empty, which never matches. Both sides are trimmed and
// compared case-insensitively. Grading is total: no input satisfying the
// schema can make it fail.
func Grade(q models.Question, userAnswer string) models.GradedAnswer {
	answer := strings.TrimSpace(userAnswer)
	correct := strings.TrimSpace(q.CorrectAnswer)

	graded := models.GradedAnswer{
		QuestionText:  q.Text,
		Kind:          q.Kind,
		UserAnswer:    answer,
		CorrectAnswer: correct,
		Explanation:   q.Explanation,
	}

	if q.IsMCQ() {
		if answer != "" && strings.EqualFold(answer, correct) {
			graded.IsCorrect = true
			graded.Score = 1.0
		}
		return graded
	}

	keywords := normalizeKeywords(q.Keywords)
	if len(keywords) == 0 {
		// No keywords: exact case-insensitive match, binary score.
		if answer != "" && strings.EqualFold(answer, correct) {
			graded.IsCorrect = true
			graded.Score = 1.0
		}
		return graded
	}

	lower := strings.ToLower(answer)
	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}

	graded.MatchedKeywords = matched
	graded.TotalKeywords = len(keywords)
	graded.Score = float64(matched) / float64(len(keywords))
	graded.IsCorrect = graded.Score >= KeywordThreshold
	return graded
}

func normalizeKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}
	normalized := make([]string, len(keywords))
	for i, kw := range keywords {
		normalized[i] = strings.ToLower(strings.TrimSpace(kw))
	}
	return normalized
}
