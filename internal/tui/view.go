package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daybook/internal/constants"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("daybook"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case StateSummary:
		b.WriteString(m.viewSummary())
	case StateQuestions:
		b.WriteString(m.viewQuestions())
	case StateEditNote:
		b.WriteString(m.viewEditNote())
	default:
		b.WriteString(m.viewToday())
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusBarStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := []struct {
		label string
		state SessionState
	}{
		{"Today", StateToday},
		{"Summary", StateSummary},
		{"Questions", StateQuestions},
	}

	rendered := make([]string, 0, len(tabs))
	for _, t := range tabs {
		active := m.state == t.state || (m.state == StateEditNote && t.state == StateToday)
		if active {
			rendered = append(rendered, activeTabStyle.Render(t.label))
		} else {
			rendered = append(rendered, tabStyle.Render(t.label))
		}
	}
	return strings.Join(rendered, " ")
}

func (m Model) viewToday() string {
	var b strings.Builder

	questions := m.journal.Questions()
	day := m.journal.Day()

	b.WriteString(questionHeaderStyle.Render(fmt.Sprintf("Reflection for %s", day.Day())))
	b.WriteString("\n\n")

	if len(questions) == 0 {
		b.WriteString(faintStyle.Render("No questions configured."))
		return b.String()
	}

	for i, q := range questions {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("%s%s", prefix, q.Text)
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString("    ")
		b.WriteString(m.renderAnswer(q))
		b.WriteString("\n")
	}

	if day.IsComplete(questions) {
		b.WriteString("\n")
		b.WriteString(answeredStyle.Render("All questions answered."))
	}

	return b.String()
}

func (m Model) renderAnswer(q models.Question) string {
	a, ok := m.journal.Day().Answer(q.ID)
	if !ok {
		return faintStyle.Render("—")
	}

	switch q.Type {
	case models.QuestionYesNo:
		if a.YesNo == nil {
			return pendingStyle.Render("unanswered (y/n)")
		}
		if *a.YesNo {
			return answeredStyle.Render("yes")
		}
		return answeredStyle.Render("no")

	case models.QuestionSlider:
		if a.Slider == nil {
			return pendingStyle.Render(fmt.Sprintf("unanswered (%d-%d)", constants.SliderMin, constants.SliderMax))
		}
		return answeredStyle.Render(fmt.Sprintf("%.0f / %d", *a.Slider, constants.SliderMax))

	case models.QuestionFreeText:
		if a.YesNo == nil {
			return pendingStyle.Render("unanswered (y/n, e to note)")
		}
		if !*a.YesNo {
			return answeredStyle.Render("no")
		}
		if a.FreeText != nil && *a.FreeText != "" {
			return answeredStyle.Render(*a.FreeText)
		}
		return answeredStyle.Render(constants.FreeTextPlaceholder)
	}

	return faintStyle.Render("—")
}

func (m Model) viewSummary() string {
	today, err := utils.TodayFromSettings(m.settings)
	if err != nil {
		return faintStyle.Render(fmt.Sprintf("cannot compute current day: %v", err))
	}

	summary := m.journal.Summary(m.rng, today)

	var b strings.Builder
	b.WriteString(questionHeaderStyle.Render(fmt.Sprintf("Summary: %s", summary.Range)))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d of %d day(s) recorded · r to cycle range", summary.DaysWithData, len(summary.Days))))
	b.WriteString("\n\n")

	for _, qs := range summary.Questions {
		b.WriteString(qs.Question.Text)
		b.WriteString("\n")

		switch {
		case qs.YesNo != nil:
			if qs.YesNo.Total == 0 {
				b.WriteString(faintStyle.Render("  no data"))
			} else {
				b.WriteString(fmt.Sprintf("  yes %d · no %d · %.0f%% yes",
					qs.YesNo.Yes, qs.YesNo.No, qs.YesNo.YesPercent*100))
			}
		case qs.Slider != nil:
			if qs.Slider.Count == 0 {
				b.WriteString(faintStyle.Render("  no data"))
			} else {
				b.WriteString(fmt.Sprintf("  average %.1f over %d day(s)", qs.Slider.Mean, qs.Slider.Count))
			}
		default:
			if len(qs.Entries) == 0 {
				b.WriteString(faintStyle.Render("  no entries"))
			} else {
				for i, e := range qs.Entries {
					if i > 0 {
						b.WriteString("\n")
					}
					b.WriteString(fmt.Sprintf("  %s  %s", faintStyle.Render(e.Day), e.Text))
				}
			}
		}
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewQuestions() string {
	var b strings.Builder

	b.WriteString(questionHeaderStyle.Render("Questions"))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("Edit with 'daybook question'; edits reset today's answers."))
	b.WriteString("\n\n")

	for i, q := range m.journal.Questions() {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%d. %s %s\n", prefix, i+1, q.Text, faintStyle.Render("("+string(q.Type)+")")))
	}

	return b.String()
}

func (m Model) viewEditNote() string {
	var b strings.Builder

	questions := m.journal.Questions()
	if m.cursor < len(questions) {
		b.WriteString(questionHeaderStyle.Render(questions[m.cursor].Text))
		b.WriteString("\n\n")
	}
	b.WriteString(m.noteInput.View())
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter to keep · esc to discard"))

	return b.String()
}
