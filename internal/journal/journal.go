package journal

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/models"
)

// Journal coordinates the question set and the current day's answer set so
// that the edit-invalidates-today rule lives in exactly one place. The CLI
// and TUI mutate questions only through here.
type Journal struct {
	store     Store
	questions *QuestionSet
	day       *DayAnswerStore
}

// Open loads the question set (seeding defaults on first run) and the answer
// set for today.
func Open(store Store, today string) *Journal {
	qs := LoadQuestionSet(store)
	day := NewDayAnswerStore(store)
	day.Load(qs.Questions(), today)
	return &Journal{
		store:     store,
		questions: qs,
		day:       day,
	}
}

// Questions returns the current ordered question list.
func (j *Journal) Questions() []models.Question {
	return j.questions.Questions()
}

// QuestionSet returns the underlying set for read-only access.
func (j *Journal) QuestionSet() *QuestionSet {
	return j.questions
}

// Day returns the working answer set for the current day.
func (j *Journal) Day() *DayAnswerStore {
	return j.day
}

// CheckForDayChange must be called with a freshly computed DayKey at every
// re-entry point before the working set is trusted. Returns whether the day
// rolled over.
func (j *Journal) CheckForDayChange(nowDay string) bool {
	return j.day.CheckForDayChange(j.questions.Questions(), nowDay)
}

// AddQuestion appends a question and resets today's answer set.
func (j *Journal) AddQuestion(text string, qt models.QuestionType) (models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Question{}, fmt.Errorf("question text cannot be empty")
	}
	if !qt.Valid() {
		return models.Question{}, fmt.Errorf("invalid question type %q", qt)
	}
	q := j.questions.Add(text, qt)
	j.resetToday()
	return q, nil
}

// UpdateQuestion edits a question in place and resets today's answer set.
// Editing an unknown id leaves the list untouched but still resets, matching
// the editor's save-whole-list behavior.
func (j *Journal) UpdateQuestion(id, text string, qt models.QuestionType) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("question text cannot be empty")
	}
	if !qt.Valid() {
		return false, fmt.Errorf("invalid question type %q", qt)
	}
	updated := j.questions.Update(id, text, qt)
	j.resetToday()
	return updated, nil
}

// DeleteQuestions removes questions by position and resets today's answer set.
func (j *Journal) DeleteQuestions(indices []int) {
	j.questions.Delete(indices)
	j.resetToday()
}

// MoveQuestions reorders questions and resets today's answer set.
func (j *Journal) MoveQuestions(fromIndices []int, toIndex int) {
	j.questions.Reorder(fromIndices, toIndex)
	j.resetToday()
}

// Summary aggregates persisted records over the window ending at asOf.
func (j *Journal) Summary(r Range, asOf string) Summary {
	return Aggregate(j.store, j.questions.Questions(), r, asOf)
}

// resetToday discards today's record, persisted and in-memory, and
// resynthesizes it against the edited question set. Historical days are
// never touched by question edits.
func (j *Journal) resetToday() {
	j.day.Reset(j.questions.Questions(), j.day.Day())
}
