package models

// QuestionType determines which Answer field a question expects
type QuestionType string

const (
	QuestionYesNo    QuestionType = "yes_no"
	QuestionSlider   QuestionType = "slider"
	QuestionFreeText QuestionType = "free_text"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionYesNo, QuestionSlider, QuestionFreeText:
		return true
	}
	return false
}

// Question is a single prompt in the daily reflection. The ID is stable
// across edits; only Text and Type change in place.
type Question struct {
	ID   string       `json:"id"`
	Text string       `json:"text"`
	Type QuestionType `json:"type"`
}
