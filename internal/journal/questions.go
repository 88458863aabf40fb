package journal

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
)

// QuestionSet holds the ordered list of reflection questions. Every mutation
// persists the whole list as its final step; persistence failures are logged
// and swallowed, leaving the in-memory list authoritative for this process.
type QuestionSet struct {
	store     Store
	questions []models.Question
}

// Store is the subset of the persistence provider the journal core uses.
// Implementations are expected to be synchronous and single-writer.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// DefaultQuestions returns the starter set seeded on first run. IDs are
// freshly generated on each call.
func DefaultQuestions() []models.Question {
	defaults := []struct {
		text string
		typ  models.QuestionType
	}{
		{"How would you rate your mood today?", models.QuestionSlider},
		{"Did you get enough sleep last night?", models.QuestionYesNo},
		{"Did you take time for yourself today?", models.QuestionYesNo},
		{"How productive did you feel today?", models.QuestionSlider},
		{"Is there anything on your mind?", models.QuestionFreeText},
	}

	questions := make([]models.Question, 0, len(defaults))
	for _, d := range defaults {
		questions = append(questions, models.Question{
			ID:   uuid.New().String(),
			Text: d.text,
			Type: d.typ,
		})
	}
	return questions
}

// LoadQuestionSet reads the persisted question list, falling back to the
// default set on first run or on an unreadable record. The fallback is
// persisted immediately so subsequent loads are stable.
func LoadQuestionSet(store Store) *QuestionSet {
	qs := &QuestionSet{store: store}

	data, err := store.Get(constants.KeyQuestions)
	if err == nil {
		var questions []models.Question
		if jsonErr := json.Unmarshal(data, &questions); jsonErr == nil && questions != nil {
			qs.questions = questions
			return qs
		}
		logger.Warn("Discarding unreadable question list", "key", constants.KeyQuestions)
	}

	qs.questions = DefaultQuestions()
	qs.persist()
	return qs
}

// Questions returns a copy of the ordered question list.
func (qs *QuestionSet) Questions() []models.Question {
	out := make([]models.Question, len(qs.questions))
	copy(out, qs.questions)
	return out
}

// Len returns the number of questions.
func (qs *QuestionSet) Len() int {
	return len(qs.questions)
}

// ByID returns the question with the given id.
func (qs *QuestionSet) ByID(id string) (models.Question, bool) {
	for _, q := range qs.questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// Add appends a new question with a freshly generated id and persists the
// list. The caller is responsible for validating the text beforehand.
func (qs *QuestionSet) Add(text string, qt models.QuestionType) models.Question {
	q := models.Question{
		ID:   uuid.New().String(),
		Text: text,
		Type: qt,
	}
	qs.questions = append(qs.questions, q)
	qs.persist()
	return q
}

// Update replaces the text and type of the question with the given id in
// place. Unknown ids are a no-op; it returns whether a question was changed.
func (qs *QuestionSet) Update(id, text string, qt models.QuestionType) bool {
	for i, q := range qs.questions {
		if q.ID == id {
			qs.questions[i].Text = text
			qs.questions[i].Type = qt
			qs.persist()
			return true
		}
	}
	return false
}

// Delete removes the questions at the given zero-based positions.
// Out-of-range and duplicate indices are ignored.
func (qs *QuestionSet) Delete(indices []int) {
	if len(indices) == 0 {
		return
	}

	remove := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(qs.questions) {
			remove[i] = true
		}
	}
	if len(remove) == 0 {
		return
	}

	kept := make([]models.Question, 0, len(qs.questions)-len(remove))
	for i, q := range qs.questions {
		if !remove[i] {
			kept = append(kept, q)
		}
	}
	qs.questions = kept
	qs.persist()
}

// Reorder moves the questions at fromIndices (in their current order) so the
// block starts at position toIndex in the resulting list, preserving the
// relative order of everything else. toIndex is clamped to the valid range.
func (qs *QuestionSet) Reorder(fromIndices []int, toIndex int) {
	if len(fromIndices) == 0 {
		return
	}

	moving := make(map[int]bool, len(fromIndices))
	for _, i := range fromIndices {
		if i >= 0 && i < len(qs.questions) {
			moving[i] = true
		}
	}
	if len(moving) == 0 {
		return
	}

	ordered := make([]int, 0, len(moving))
	for i := range moving {
		ordered = append(ordered, i)
	}
	sort.Ints(ordered)

	moved := make([]models.Question, 0, len(ordered))
	for _, i := range ordered {
		moved = append(moved, qs.questions[i])
	}

	rest := make([]models.Question, 0, len(qs.questions)-len(moved))
	for i, q := range qs.questions {
		if !moving[i] {
			rest = append(rest, q)
		}
	}

	insertAt := toIndex
	if insertAt > len(rest) {
		insertAt = len(rest)
	}
	if insertAt < 0 {
		insertAt = 0
	}

	result := make([]models.Question, 0, len(qs.questions))
	result = append(result, rest[:insertAt]...)
	result = append(result, moved...)
	result = append(result, rest[insertAt:]...)

	qs.questions = result
	qs.persist()
}

// persist serializes the whole list back to the store. Failures leave the
// in-memory list intact; the next successful mutation rewrites everything.
func (qs *QuestionSet) persist() {
	data, err := json.Marshal(qs.questions)
	if err != nil {
		logger.Warn("Failed to serialize question list", "error", err)
		return
	}
	if err := qs.store.Set(constants.KeyQuestions, data); err != nil {
		logger.Warn("Failed to persist question list", "error", err)
	}
}
