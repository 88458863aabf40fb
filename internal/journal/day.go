package journal

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
)

// DayAnswerStore owns the working answer set for the current calendar day.
// It moves through three states over a process lifetime: uninitialized (no
// day adopted yet), loaded for a day, and stale (the wall-clock day advanced
// past the loaded one). Callers drive the stale detection by passing a fresh
// DayKey into CheckForDayChange at every re-entry point; the store never
// reads the clock itself.
type DayAnswerStore struct {
	store   Store
	day     string // "" until the first Load
	answers map[string]models.Answer
}

func NewDayAnswerStore(store Store) *DayAnswerStore {
	return &DayAnswerStore{store: store}
}

// AnswersKey returns the persistence key for a day's answer record.
func AnswersKey(day string) string {
	return constants.AnswersKeyPrefix + day
}

// Load adopts the persisted record for today, or synthesizes an empty set
// against the given questions when no readable record exists. A synthesized
// set stays unsaved until Save is called.
func (s *DayAnswerStore) Load(questions []models.Question, today string) {
	s.day = today
	s.answers = s.loadDay(questions, today)
}

// CheckForDayChange compares the loaded day against nowDay and reloads for
// the new day when they differ. It returns whether a reload happened. Unsaved
// edits belonging to the old day are discarded; they must never surface under
// the new day's label.
func (s *DayAnswerStore) CheckForDayChange(questions []models.Question, nowDay string) bool {
	day, answers, reloaded := advanceDay(s.day, nowDay, s.answers, func(d string) map[string]models.Answer {
		return s.loadDay(questions, d)
	})
	s.day = day
	s.answers = answers
	return reloaded
}

// advanceDay is the pure rollover transition. A matching day keeps the
// current working set; a changed day adopts the reloaded set for nowDay.
// The reload step is injected so the transition itself touches neither the
// clock nor the store.
func advanceDay(lastDay, nowDay string, current map[string]models.Answer, reload func(day string) map[string]models.Answer) (string, map[string]models.Answer, bool) {
	if lastDay == nowDay {
		return lastDay, current, false
	}
	return nowDay, reload(nowDay), true
}

// Reset discards the day's record in place: the persisted blob is removed
// and an empty set is resynthesized against the given questions. Question
// edits funnel through here; unsaved edits are intentionally lost.
func (s *DayAnswerStore) Reset(questions []models.Question, day string) {
	if err := s.store.Remove(AnswersKey(day)); err != nil {
		logger.Warn("Failed to remove day record", "day", day, "error", err)
	}
	s.day = day
	s.answers = emptyAnswers(questions, day)
}

// loadDay reads and deserializes one day's record. A missing or unreadable
// record yields a fresh empty set; the two cases are deliberately
// indistinguishable to callers, with the unreadable one logged.
func (s *DayAnswerStore) loadDay(questions []models.Question, day string) map[string]models.Answer {
	data, err := s.store.Get(AnswersKey(day))
	if err == nil {
		var answers map[string]models.Answer
		if jsonErr := json.Unmarshal(data, &answers); jsonErr == nil && answers != nil {
			// Adopt verbatim, even if it no longer matches the question set.
			return answers
		}
		logger.Warn("Discarding unreadable day record", "day", day)
	}
	return emptyAnswers(questions, day)
}

func emptyAnswers(questions []models.Question, day string) map[string]models.Answer {
	answers := make(map[string]models.Answer, len(questions))
	for _, q := range questions {
		answers[q.ID] = models.Answer{
			ID:         uuid.New().String(),
			QuestionID: q.ID,
			Day:        day,
		}
	}
	return answers
}

// Day returns the DayKey the working set belongs to.
func (s *DayAnswerStore) Day() string {
	return s.day
}

// Answer returns the working answer for a question.
func (s *DayAnswerStore) Answer(questionID string) (models.Answer, bool) {
	a, ok := s.answers[questionID]
	return a, ok
}

// Answers returns a copy of the working answer map.
func (s *DayAnswerStore) Answers() map[string]models.Answer {
	out := make(map[string]models.Answer, len(s.answers))
	for id, a := range s.answers {
		out[id] = a
	}
	return out
}

// SetYesNo records a yes/no value. Questions absent from the working set are
// silently ignored.
func (s *DayAnswerStore) SetYesNo(questionID string, value bool) {
	a, ok := s.answers[questionID]
	if !ok {
		return
	}
	a.YesNo = &value
	s.answers[questionID] = a
}

// SetSlider records a slider value.
func (s *DayAnswerStore) SetSlider(questionID string, value float64) {
	a, ok := s.answers[questionID]
	if !ok {
		return
	}
	a.Slider = &value
	s.answers[questionID] = a
}

// SetFreeText records a free-text body.
func (s *DayAnswerStore) SetFreeText(questionID string, value string) {
	a, ok := s.answers[questionID]
	if !ok {
		return
	}
	a.FreeText = &value
	s.answers[questionID] = a
}

// IsComplete reports whether every given question has been answered per its
// type. Free-text questions count as answered once their yes/no flag is set;
// the text body is optional. Pure; no side effects.
func (s *DayAnswerStore) IsComplete(questions []models.Question) bool {
	for _, q := range questions {
		a, ok := s.answers[q.ID]
		if !ok || !a.Answered(q.Type) {
			return false
		}
	}
	return true
}

// Save serializes the full working map to the day's key, overwriting any
// prior value. Failures are logged and swallowed: the in-memory state stays
// correct, and the next Save rewrites everything.
func (s *DayAnswerStore) Save() {
	if s.day == "" {
		return
	}
	data, err := json.Marshal(s.answers)
	if err != nil {
		logger.Warn("Failed to serialize day record", "day", s.day, "error", err)
		return
	}
	if err := s.store.Set(AnswersKey(s.day), data); err != nil {
		logger.Warn("Failed to persist day record", "day", s.day, "error", err)
	}
}
