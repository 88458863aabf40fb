package journal

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

// Range selects the aggregation window.
type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
)

// ParseRange parses a range name as used on the command line.
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeToday, RangeWeek, RangeMonth:
		return Range(s), nil
	}
	return "", fmt.Errorf("invalid range %q (expected today, week, or month)", s)
}

// Days returns the window length in calendar days.
func (r Range) Days() int {
	switch r {
	case RangeWeek:
		return constants.WeekWindowDays
	case RangeMonth:
		return constants.MonthWindowDays
	default:
		return 1
	}
}

// YesNoStats counts yes/no responses across the window.
type YesNoStats struct {
	Yes   int
	No    int
	Total int
	// YesPercent is Yes/(Yes+No) in [0,1], and 0 when Total is 0.
	YesPercent float64
}

// SliderStats is the arithmetic mean of slider responses across the window.
// Count == 0 means no data; Mean is meaningless then and callers must render
// a distinct no-data state rather than zero.
type SliderStats struct {
	Mean  float64
	Count int
}

// TextEntry is one free-text response, ordered most recent first.
type TextEntry struct {
	Day  string
	Text string
}

// QuestionSummary holds the per-question reduction. Exactly one of the three
// result fields is populated, matching the question's type.
type QuestionSummary struct {
	Question models.Question
	YesNo    *YesNoStats
	Slider   *SliderStats
	Entries  []TextEntry
}

// Summary is the aggregate over one window.
type Summary struct {
	Range        Range
	AsOf         string
	Days         []string // window DayKeys, most recent first
	DaysWithData int
	Questions    []QuestionSummary
}

// Aggregate reads the persisted records for the window ending at asOf and
// folds them per question. It only ever sees saved state: days with no
// readable record are omitted rather than zero-filled, and answers for
// questions no longer in the set are dropped. Read-only.
func Aggregate(store Store, questions []models.Question, r Range, asOf string) Summary {
	days := windowDays(r, asOf)

	records := make([]map[string]models.Answer, 0, len(days))
	for _, day := range days {
		record, ok := readDay(store, day)
		if ok {
			records = append(records, record)
		}
	}

	summary := Summary{
		Range:        r,
		AsOf:         asOf,
		Days:         days,
		DaysWithData: len(records),
		Questions:    make([]QuestionSummary, 0, len(questions)),
	}

	for _, q := range questions {
		qs := QuestionSummary{Question: q}
		switch q.Type {
		case models.QuestionYesNo:
			qs.YesNo = foldYesNo(q.ID, records)
		case models.QuestionSlider:
			qs.Slider = foldSlider(q.ID, records)
		case models.QuestionFreeText:
			qs.Entries = foldFreeText(q.ID, records)
		}
		summary.Questions = append(summary.Questions, qs)
	}

	return summary
}

// windowDays returns the DayKeys for the window ending at and including
// asOf, most recent first.
func windowDays(r Range, asOf string) []string {
	n := r.Days()
	days := make([]string, 0, n)
	for i := 0; i < n; i++ {
		day, err := utils.DayKeyOffset(asOf, i)
		if err != nil {
			logger.Warn("Invalid as-of day for summary window", "asOf", asOf, "error", err)
			return []string{asOf}
		}
		days = append(days, day)
	}
	return days
}

// readDay loads one persisted day record. Missing days are expected; corrupt
// ones are logged and treated the same way.
func readDay(store Store, day string) (map[string]models.Answer, bool) {
	data, err := store.Get(AnswersKey(day))
	if err != nil {
		return nil, false
	}
	var answers map[string]models.Answer
	if jsonErr := json.Unmarshal(data, &answers); jsonErr != nil || answers == nil {
		logger.Warn("Skipping unreadable day record in summary", "day", day)
		return nil, false
	}
	return answers, true
}

func foldYesNo(questionID string, records []map[string]models.Answer) *YesNoStats {
	stats := &YesNoStats{}
	for _, record := range records {
		a, ok := record[questionID]
		if !ok || a.YesNo == nil {
			continue
		}
		if *a.YesNo {
			stats.Yes++
		} else {
			stats.No++
		}
	}
	stats.Total = stats.Yes + stats.No
	if stats.Total > 0 {
		stats.YesPercent = float64(stats.Yes) / float64(stats.Total)
	}
	return stats
}

func foldSlider(questionID string, records []map[string]models.Answer) *SliderStats {
	stats := &SliderStats{}
	sum := 0.0
	for _, record := range records {
		a, ok := record[questionID]
		if !ok || a.Slider == nil {
			continue
		}
		sum += *a.Slider
		stats.Count++
	}
	if stats.Count > 0 {
		stats.Mean = sum / float64(stats.Count)
	}
	return stats
}

// foldFreeText collects entries whose yes/no flag is set true, most recent
// first. The flag gates inclusion; an entry with a set flag but no text body
// still appears, under a placeholder.
func foldFreeText(questionID string, records []map[string]models.Answer) []TextEntry {
	var entries []TextEntry
	for _, record := range records {
		a, ok := record[questionID]
		if !ok || a.YesNo == nil || !*a.YesNo {
			continue
		}
		text := constants.FreeTextPlaceholder
		if a.FreeText != nil && *a.FreeText != "" {
			text = *a.FreeText
		}
		entries = append(entries, TextEntry{Day: a.Day, Text: text})
	}
	return entries
}
