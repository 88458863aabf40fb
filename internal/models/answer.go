package models

// Answer is one question's response for one day. Exactly one Answer exists
// per (day, question) pair. Which value field is populated depends on the
// question's type; nil means "not answered yet".
//
// Free-text questions carry both YesNo and FreeText: the yes/no flag records
// whether the user responded at all, and gates the entry's appearance in
// summaries. The text body is optional even when the flag is set.
type Answer struct {
	ID         string   `json:"id"`
	QuestionID string   `json:"question_id"`
	Day        string   `json:"day"` // YYYY-MM-DD format
	YesNo      *bool    `json:"yes_no,omitempty"`
	Slider     *float64 `json:"slider,omitempty"`
	FreeText   *string  `json:"free_text,omitempty"`
}

// Answered reports whether the answer satisfies the completeness rule for
// the given question type: YesNo and FreeText require the yes/no flag,
// Slider requires a slider value.
func (a Answer) Answered(t QuestionType) bool {
	switch t {
	case QuestionYesNo, QuestionFreeText:
		return a.YesNo != nil
	case QuestionSlider:
		return a.Slider != nil
	}
	return false
}
