package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is reported when the operator quits the dashboard mid-run.
var ErrAborted = errors.New("destroy aborted by user")

// maxWarnings bounds how many warnings stay on screen.
const maxWarnings = 5

// Phase is one destroy phase as displayed.
type Phase struct {
	Name   string
	Done   bool
	Active bool
	Err    error
}

// Model is the Bubble Tea model for the destroy dashboard.
type Model struct {
	StackName   string
	Environment string

	Phases   []Phase
	Activity string   // Latest status line
	Warnings []string // Most recent last
	Summary  string

	StartTime    time.Time
	SpinnerFrame int

	// UI state
	Width   int
	Height  int
	Err     error
	Done    bool
	Aborted bool
}

// NewDestroyModel creates a model for the given stack and phase names.
func NewDestroyModel(stackName, environment string, phases []string) Model {
	m := Model{
		StackName:   stackName,
		Environment: environment,
		StartTime:   time.Now(),
	}
	for _, name := range phases {
		m.Phases = append(m.Phases, Phase{Name: name})
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !m.Done && m.Err == nil {
				m.Aborted = true
				m.Err = ErrAborted
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)

	case StatusMsg:
		m.Activity = msg.Text

	case WarnMsg:
		m.Warnings = append(m.Warnings, msg.Text)
		if len(m.Warnings) > maxWarnings {
			m.Warnings = m.Warnings[len(m.Warnings)-maxWarnings:]
		}

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.Summary = msg.Summary
		for i := range m.Phases {
			m.Phases[i].Active = false
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Name == msg.Phase {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Mark previous phases as done
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	switch {
	case msg.Err != nil:
		m.Phases[idx].Err = msg.Err
		m.Phases[idx].Active = false
	case msg.Done:
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
	default:
		m.Phases[idx].Active = true
	}
}

// progress returns the fraction of phases completed.
func (m Model) progress() float64 {
	if m.Done {
		return 1.0
	}
	if len(m.Phases) == 0 {
		return 0
	}
	done := 0
	for _, p := range m.Phases {
		if p.Done {
			done++
		}
	}
	return float64(done) / float64(len(m.Phases))
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
