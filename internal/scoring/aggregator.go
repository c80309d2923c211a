package scoring

import (
	"github.com/studyforge/scoring-service/internal/models"
)

// ScoreTest grades a whole test and aggregates the results.
//
// questions must have passed validation; answers maps question text to the
// user's submitted string, with missing entries treated as unanswered.
// timeTaken is a caller-supplied measurement in seconds and is recorded
// as-is. The fold is pure and synchronous; persistence and leaderboard
// updates are the caller's responsibility.
func ScoreTest(questions []models.Question, answers map[string]string, timeTaken float64) models.ResultSummary {
	summary := models.ResultSummary{
		Total:            len(questions),
		TimeTaken:        timeTaken,
		CorrectAnswers:   []models.GradedAnswer{},
		IncorrectAnswers: []models.GradedAnswer{},
	}

	for _, q := range questions {
		graded := Grade(q, answers[q.Text])

		if q.IsMCQ() {
			summary.TotalMCQs++
			if graded.IsCorrect {
				summary.CorrectMCQs++
				summary.CorrectAnswers = append(summary.CorrectAnswers, graded)
			} else {
				summary.IncorrectAnswers = append(summary.IncorrectAnswers, graded)
			}
			continue
		}

		summary.TotalShort++
		if graded.IsCorrect {
			// Credit equals the partial score, not a flat 1.0. Answers below
			// the threshold earn nothing even though their partial score is
			// kept on the GradedAnswer for display.
			summary.CorrectShort += graded.Score
			summary.CorrectAnswers = append(summary.CorrectAnswers, graded)
		} else {
			summary.IncorrectAnswers = append(summary.IncorrectAnswers, graded)
		}
	}

	summary.Score = float64(summary.CorrectMCQs) + summary.CorrectShort
	if summary.Total > 0 {
		summary.Accuracy = summary.Score / float64(summary.Total) * 100
	}

	return summary
}
