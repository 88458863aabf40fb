package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/logger"
	"github.com/julianstephens/daybook/internal/models"
	"github.com/julianstephens/daybook/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.checkDayChange()
		return m, tick()

	case tea.KeyMsg:
		// Any interaction may be the first one after a long suspend; make
		// sure the working set belongs to the current day before acting.
		m.checkDayChange()

		if m.state == StateEditNote {
			return m.updateEditNote(msg)
		}
		return m.updateMain(msg)
	}

	return m, nil
}

// checkDayChange recomputes the DayKey and reloads the working set when the
// calendar day advanced underneath the running program.
func (m *Model) checkDayChange() {
	today, err := utils.TodayFromSettings(m.settings)
	if err != nil {
		logger.Warn("Failed to compute current day", "error", err)
		return
	}
	if m.journal.CheckForDayChange(today) {
		m.cursor = 0
		m.state = StateToday
		m.rolledAt = today
		m.status = fmt.Sprintf("New day: reloaded for %s", today)
	}
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questions := m.journal.Questions()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		switch m.state {
		case StateToday:
			m.state = StateSummary
		case StateSummary:
			m.state = StateQuestions
		default:
			m.state = StateToday
		}
		m.cursor = 0
		m.status = ""
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.state == StateToday || m.state == StateQuestions {
			if m.cursor < len(questions)-1 {
				m.cursor++
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Range):
		if m.state == StateSummary {
			switch m.rng {
			case journal.RangeToday:
				m.rng = journal.RangeWeek
			case journal.RangeWeek:
				m.rng = journal.RangeMonth
			default:
				m.rng = journal.RangeToday
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Save):
		if m.state == StateToday {
			m.journal.Day().Save()
			m.status = fmt.Sprintf("Saved answers for %s", m.journal.Day().Day())
		}
		return m, nil
	}

	if m.state == StateToday && m.cursor < len(questions) {
		return m.updateTodayAnswer(msg, questions[m.cursor])
	}

	return m, nil
}

// updateTodayAnswer applies answer edits to the question under the cursor.
func (m Model) updateTodayAnswer(msg tea.KeyMsg, q models.Question) (tea.Model, tea.Cmd) {
	day := m.journal.Day()

	switch {
	case key.Matches(msg, m.keys.Yes):
		if q.Type == models.QuestionYesNo || q.Type == models.QuestionFreeText {
			day.SetYesNo(q.ID, true)
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.No):
		if q.Type == models.QuestionYesNo || q.Type == models.QuestionFreeText {
			day.SetYesNo(q.ID, false)
			m.status = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.EditNote):
		if q.Type == models.QuestionFreeText {
			m.state = StateEditNote
			m.noteInput.SetValue("")
			if a, ok := day.Answer(q.ID); ok && a.FreeText != nil {
				m.noteInput.SetValue(*a.FreeText)
			}
			m.noteInput.Focus()
		}
		return m, nil
	}

	// Digits 1-9 set a slider value directly; 0 means 10.
	if q.Type == models.QuestionSlider && len(msg.String()) == 1 {
		ch := msg.String()[0]
		if ch >= '0' && ch <= '9' {
			v := float64(ch - '0')
			if v == 0 {
				v = 10
			}
			day.SetSlider(q.ID, v)
			m.status = ""
		}
	}

	return m, nil
}

func (m Model) updateEditNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		questions := m.journal.Questions()
		if m.cursor < len(questions) {
			m.journal.Day().SetFreeText(questions[m.cursor].ID, m.noteInput.Value())
		}
		m.noteInput.Blur()
		m.state = StateToday
		return m, nil

	case "esc":
		m.noteInput.Blur()
		m.state = StateToday
		return m, nil
	}

	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}
