package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/domain"
	"quicklaunch/internal/engine"
	"quicklaunch/internal/eventbus"
)

// pollInterval is how often the UI gives late plugin responses a render
// pass; providers that answered after their dispatch tick show up here
const pollInterval = 100 * time.Millisecond

// Model represents the launcher UI state
type Model struct {
	bus    eventbus.EventBus
	engine *engine.Engine

	input      textinput.Model
	candidates []*domain.Candidate
	cursor     int

	width  int
	height int

	helpOps  *HelpOps
	quitting bool
}

// NewModel creates the launcher UI over the search engine
func NewModel(bus eventbus.EventBus, eng *engine.Engine, initialQuery string) *Model {
	input := textinput.New()
	input.Placeholder = "Type to search"
	input.Prompt = "> "
	input.Focus()

	m := &Model{
		bus:     bus,
		engine:  eng,
		input:   input,
		helpOps: NewHelpOps(),
	}

	if initialQuery != "" {
		m.input.SetValue(initialQuery)
		m.candidates = eng.Search(initialQuery)
	} else {
		m.candidates = eng.Open()
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4

	case tickMsg:
		if m.engine.CollectLate() {
			m.candidates = m.engine.Candidates()
			m.clampCursor()
		}
		return m, m.tick()

	case EventMsg:
		// A fresh application index invalidates the current listing;
		// rerun the query against the new snapshot
		if _, ok := msg.Event.(eventbus.IndexRebuiltEvent); ok {
			m.candidates = m.engine.Search(m.input.Value())
			m.clampCursor()
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("help pager failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m.dismiss()

		case "enter":
			return m.apply()

		case "tab":
			if text, ok := m.engine.Complete(); ok {
				m.setQuery(text)
			}
			return m, nil

		case "up", "ctrl+k":
			m.moveCursor(-1)
			return m, nil

		case "down", "ctrl+j":
			m.moveCursor(1)
			return m, nil

		case "?":
			if m.input.Value() == "" {
				return m, m.showHelp()
			}
		}

		// Everything else edits the query
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before {
			m.candidates = m.engine.Search(value)
			m.cursor = 0
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// apply commits the candidate under the cursor
func (m *Model) apply() (tea.Model, tea.Cmd) {
	result := m.engine.Apply(m.cursor)

	if result.HasFill {
		m.setQuery(result.FillText)
	}

	if result.KeepOpen {
		return m, nil
	}
	return m.dismiss()
}

// dismiss cancels the session and quits the program
func (m *Model) dismiss() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.engine.Cancel()
	return m, tea.Quit
}

// setQuery replaces the input text and reruns the search, as a provider
// fill response requires
func (m *Model) setQuery(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.candidates = m.engine.Search(text)
	m.cursor = 0
}

func (m *Model) moveCursor(delta int) {
	if len(m.candidates) == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = len(m.candidates) - 1
	} else if m.cursor >= len(m.candidates) {
		m.cursor = 0
	}

	m.engine.Select(m.cursor)
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.candidates) {
		m.cursor = 0
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) showHelp() tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(renderHelpContent())}
	}
}
