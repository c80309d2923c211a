package models

// GradedAnswer is the grader's verdict for one question. It is created once
// by the grader, owned by the result summary, and never mutated afterwards.
// Partial credit is kept even when IsCorrect is false so the UI can show how
// close the answer was.
type GradedAnswer struct {
	QuestionText    string       `json:"question"`
	Kind            QuestionKind `json:"type"`
	UserAnswer      string       `json:"user_answer"`
	CorrectAnswer   string       `json:"correct_answer"`
	IsCorrect       bool         `json:"is_correct"`
	Score           float64      `json:"score"`
	MatchedKeywords int          `json:"matched_keywords"`
	TotalKeywords   int          `json:"total_keywords"`
	Explanation     string       `json:"explanation"`
}

// ResultSummary holds the aggregate outcome of one completed test.
// Numeric fields are reported as computed; clamping for display is the
// renderer's job, not ours.
type ResultSummary struct {
	CorrectMCQs      int            `json:"correct_mcqs"`
	TotalMCQs        int            `json:"total_mcqs"`
	CorrectShort     float64        `json:"correct_short"`
	TotalShort       int            `json:"total_short"`
	Score            float64        `json:"score"`
	Total            int            `json:"total"`
	Accuracy         float64        `json:"accuracy"`
	TimeTaken        float64        `json:"time_taken"`
	CorrectAnswers   []GradedAnswer `json:"correct_answers"`
	IncorrectAnswers []GradedAnswer `json:"incorrect_answers"`
}
