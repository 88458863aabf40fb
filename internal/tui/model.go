package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daybook/internal/journal"
	"github.com/julianstephens/daybook/internal/models"
)

// SessionState identifies the active view
type SessionState int

const (
	StateToday SessionState = iota
	StateSummary
	StateQuestions
	StateEditNote
)

// tickMsg drives the periodic day-change check while the program idles.
type tickMsg time.Time

type Model struct {
	journal  *journal.Journal
	settings models.Settings

	state    SessionState
	keys     KeyMap
	help     help.Model
	noteInput  textinput.Model
	cursor   int
	rng      journal.Range
	status   string
	width    int
	height   int
	rolledAt string // day of the last rollover notice, for the status bar
}

func New(j *journal.Journal, settings models.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "Write a note..."
	ti.CharLimit = 500

	return Model{
		journal:  j,
		settings: settings,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		noteInput:  ti,
		rng:      journal.RangeWeek,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
