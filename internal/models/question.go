package models

// QuestionKind identifies how a question is presented and graded.
type QuestionKind string

const (
	MCQ         QuestionKind = "MCQ"
	ShortAnswer QuestionKind = "Short Answer"
)

// Question is a single generated test question. Batches arrive from the
// model-backed generator and must pass validator.ValidateBatch before the
// scoring engine will touch them. Question text doubles as the key under
// which the user's answer is recorded.
type Question struct {
	Text          string       `json:"question" validate:"required"`
	Kind          QuestionKind `json:"type" validate:"required,question_kind"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"answer" validate:"required"`
	Keywords      []string     `json:"keywords,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
}

func (q Question) IsMCQ() bool {
	return q.Kind == MCQ
}

// DefaultQuestions returns the built-in fallback set that callers substitute
// when a generated batch fails validation, so a test can always be taken.
func DefaultQuestions() []Question {
	return []Question{
		{
			Text:          "What is the capital of France?",
			Kind:          MCQ,
			Options:       []string{"London", "Berlin", "Paris", "Madrid"},
			CorrectAnswer: "Paris",
			Explanation:   "Paris has been the capital since 508 AD",
		},
		{
			Text:          "Explain photosynthesis",
			Kind:          ShortAnswer,
			CorrectAnswer: "process by which plants convert sunlight into energy",
			Keywords:      []string{"plants", "sunlight", "energy", "convert"},
			Explanation:   "Uses chlorophyll to transform light energy",
		},
		{
			Text:          "Who invented Python?",
			Kind:          ShortAnswer,
			CorrectAnswer: "guido van rossum",
			Explanation:   "Created in the late 1980s",
		},
	}
}
