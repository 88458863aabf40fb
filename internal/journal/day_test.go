package journal

import (
	"encoding/json"
	"testing"

	"github.com/julianstephens/daybook/internal/models"
)

func TestLoad_SynthesizesEmptySetWhenNoRecordExists(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()

	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")

	if day.Day() != "2026-03-10" {
		t.Fatalf("expected day 2026-03-10, got %q", day.Day())
	}

	answers := day.Answers()
	if len(answers) != len(questions) {
		t.Fatalf("expected %d answers, got %d", len(questions), len(answers))
	}
	for _, q := range questions {
		a, ok := answers[q.ID]
		if !ok {
			t.Fatalf("missing answer for question %s", q.ID)
		}
		if a.QuestionID != q.ID || a.Day != "2026-03-10" {
			t.Errorf("answer for %s has wrong identity: %+v", q.ID, a)
		}
		if a.YesNo != nil || a.Slider != nil || a.FreeText != nil {
			t.Errorf("synthesized answer for %s should have no values: %+v", q.ID, a)
		}
	}

	// Synthesis alone must not write anything.
	if len(store.sets) != 0 {
		t.Errorf("expected no writes during load, got sets for %v", store.sets)
	}
}

func TestLoad_AdoptsPersistedRecordVerbatim(t *testing.T) {
	store := newMemStore()
	store.putJSON(t, AnswersKey("2026-03-10"), map[string]models.Answer{
		"q-orphan": {ID: "a1", QuestionID: "q-orphan", Day: "2026-03-10", YesNo: boolPtr(true)},
	})

	day := NewDayAnswerStore(store)
	day.Load(testQuestions(), "2026-03-10")

	answers := day.Answers()
	if len(answers) != 1 {
		t.Fatalf("expected the persisted record verbatim, got %d answers", len(answers))
	}
	if _, ok := answers["q-orphan"]; !ok {
		t.Errorf("expected orphaned answer to survive loading, got %v", answers)
	}
}

func TestLoad_FallsBackToEmptySetOnCorruptRecord(t *testing.T) {
	store := newMemStore()
	store.data[AnswersKey("2026-03-10")] = []byte("{not json")

	day := NewDayAnswerStore(store)
	day.Load(testQuestions(), "2026-03-10")

	answers := day.Answers()
	if len(answers) != len(testQuestions()) {
		t.Fatalf("expected fresh empty set after corrupt record, got %d answers", len(answers))
	}
	for _, a := range answers {
		if a.YesNo != nil || a.Slider != nil || a.FreeText != nil {
			t.Errorf("expected unanswered entries after corrupt record, got %+v", a)
		}
	}
}

func TestCheckForDayChange_SameDayKeepsWorkingSet(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()

	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")
	day.SetYesNo("q-sleep", true)

	if day.CheckForDayChange(questions, "2026-03-10") {
		t.Fatal("expected no rollover for the same day")
	}

	a, _ := day.Answer("q-sleep")
	if a.YesNo == nil || !*a.YesNo {
		t.Error("unsaved edit should survive a same-day check")
	}
}

func TestCheckForDayChange_RolloverDiscardsUnsavedEdits(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()

	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")
	day.SetYesNo("q-sleep", true)
	day.SetSlider("q-mood", 7)

	if !day.CheckForDayChange(questions, "2026-03-11") {
		t.Fatal("expected rollover when the day advances")
	}
	if day.Day() != "2026-03-11" {
		t.Fatalf("expected working day 2026-03-11, got %q", day.Day())
	}

	for _, q := range questions {
		a, ok := day.Answer(q.ID)
		if !ok {
			t.Fatalf("missing answer for %s after rollover", q.ID)
		}
		if a.Day != "2026-03-11" {
			t.Errorf("answer for %s carries day %q, want 2026-03-11", q.ID, a.Day)
		}
		if a.YesNo != nil || a.Slider != nil {
			t.Errorf("unsaved edits leaked across the day boundary: %+v", a)
		}
	}

	// Yesterday's key must not have been written during rollover.
	if _, err := store.Get(AnswersKey("2026-03-10")); err == nil {
		t.Error("rollover must not persist the discarded working set")
	}
}

func TestCheckForDayChange_RolloverAdoptsNewDaysRecord(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()
	store.putJSON(t, AnswersKey("2026-03-11"), map[string]models.Answer{
		"q-sleep": {ID: "a1", QuestionID: "q-sleep", Day: "2026-03-11", YesNo: boolPtr(false)},
	})

	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")

	if !day.CheckForDayChange(questions, "2026-03-11") {
		t.Fatal("expected rollover")
	}
	a, ok := day.Answer("q-sleep")
	if !ok || a.YesNo == nil || *a.YesNo {
		t.Errorf("expected the new day's persisted record to be adopted, got %+v", a)
	}
}

func TestAdvanceDay_PureTransition(t *testing.T) {
	current := map[string]models.Answer{"q": {ID: "a"}}
	reloaded := map[string]models.Answer{"q": {ID: "b"}}
	reloadCalls := 0
	reload := func(d string) map[string]models.Answer {
		reloadCalls++
		if d != "2026-03-11" {
			t.Errorf("reload called for %q, want 2026-03-11", d)
		}
		return reloaded
	}

	day, answers, changed := advanceDay("2026-03-10", "2026-03-10", current, reload)
	if changed || day != "2026-03-10" || reloadCalls != 0 {
		t.Errorf("same-day transition should be a no-op, got day=%q changed=%v reloads=%d", day, changed, reloadCalls)
	}
	if answers["q"].ID != "a" {
		t.Error("same-day transition must keep the current set")
	}

	day, answers, changed = advanceDay("2026-03-10", "2026-03-11", current, reload)
	if !changed || day != "2026-03-11" || reloadCalls != 1 {
		t.Errorf("cross-day transition should reload, got day=%q changed=%v reloads=%d", day, changed, reloadCalls)
	}
	if answers["q"].ID != "b" {
		t.Error("cross-day transition must adopt the reloaded set")
	}
}

func TestSetAnswer_UnknownQuestionIsIgnored(t *testing.T) {
	store := newMemStore()
	day := NewDayAnswerStore(store)
	day.Load(testQuestions(), "2026-03-10")

	day.SetYesNo("q-ghost", true)
	day.SetSlider("q-ghost", 5)
	day.SetFreeText("q-ghost", "hello")

	if _, ok := day.Answer("q-ghost"); ok {
		t.Error("setting an answer for an unknown question must not create one")
	}
}

func TestIsComplete_FreeTextNeedsOnlyTheFlag(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()
	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")

	if day.IsComplete(questions) {
		t.Fatal("empty set should not be complete")
	}

	day.SetSlider("q-mood", 6)
	day.SetYesNo("q-sleep", true)
	if day.IsComplete(questions) {
		t.Fatal("set should be incomplete while the free-text question is unanswered")
	}

	// The note body alone does not complete a free-text question.
	day.SetFreeText("q-mind", "a long note")
	if day.IsComplete(questions) {
		t.Fatal("free-text body without the yes/no flag must not count as answered")
	}

	day.SetYesNo("q-mind", true)
	if !day.IsComplete(questions) {
		t.Fatal("expected completion once every question is answered per its type")
	}
}

func TestSave_RoundTripsThroughTheStore(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()

	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")
	day.SetSlider("q-mood", 8)
	day.SetYesNo("q-sleep", false)
	day.SetYesNo("q-mind", true)
	day.SetFreeText("q-mind", "rough day")
	day.Save()

	data, err := store.Get(AnswersKey("2026-03-10"))
	if err != nil {
		t.Fatalf("expected a persisted record: %v", err)
	}
	var persisted map[string]models.Answer
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("persisted record is not valid JSON: %v", err)
	}

	reloaded := NewDayAnswerStore(store)
	reloaded.Load(questions, "2026-03-10")
	a, _ := reloaded.Answer("q-mind")
	if a.YesNo == nil || !*a.YesNo || a.FreeText == nil || *a.FreeText != "rough day" {
		t.Errorf("round trip lost data: %+v", a)
	}
	if !reloaded.IsComplete(questions) {
		t.Error("round-tripped set should still be complete")
	}
}

func TestSave_FailureKeepsWorkingSetIntact(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()

	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")
	day.SetSlider("q-mood", 4)

	store.failSet = true
	day.Save()

	a, _ := day.Answer("q-mood")
	if a.Slider == nil || *a.Slider != 4 {
		t.Error("a failed save must leave the in-memory set untouched")
	}

	// A later successful save rewrites the full record.
	store.failSet = false
	day.Save()
	if _, err := store.Get(AnswersKey("2026-03-10")); err != nil {
		t.Errorf("expected the retried save to persist: %v", err)
	}
}

func TestReset_RemovesRecordAndResynthesizes(t *testing.T) {
	store := newMemStore()
	questions := testQuestions()

	day := NewDayAnswerStore(store)
	day.Load(questions, "2026-03-10")
	day.SetSlider("q-mood", 9)
	day.Save()

	day.Reset(questions, "2026-03-10")

	if _, err := store.Get(AnswersKey("2026-03-10")); err == nil {
		t.Error("reset must remove the persisted record")
	}
	a, _ := day.Answer("q-mood")
	if a.Slider != nil {
		t.Error("reset must discard in-memory values")
	}
	if len(day.Answers()) != len(questions) {
		t.Errorf("reset should resynthesize one entry per question, got %d", len(day.Answers()))
	}
}
