package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var testPhases = []string{"describe stack", "guard user data", "delete stack"}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3600 * time.Second, "1h0m"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	m := NewDestroyModel("MyAppStaging", "staging", testPhases)
	if p := m.progress(); p != 0 {
		t.Errorf("expected 0, got %v", p)
	}

	m.Phases[0].Done = true
	if p := m.progress(); p < 0.33 || p > 0.34 {
		t.Errorf("expected ~1/3, got %v", p)
	}

	m.Done = true
	if p := m.progress(); p != 1.0 {
		t.Errorf("expected 1.0, got %v", p)
	}

	if p := (Model{}).progress(); p != 0 {
		t.Errorf("expected 0 for no phases, got %v", p)
	}
}

func TestModelUpdatePhase(t *testing.T) {
	m := NewDestroyModel("MyAppStaging", "staging", testPhases)

	m.updatePhase(PhaseMsg{Phase: "describe stack"})
	if !m.Phases[0].Active {
		t.Error("expected describe phase to be active")
	}

	m.updatePhase(PhaseMsg{Phase: "describe stack", Done: true})
	if !m.Phases[0].Done || m.Phases[0].Active {
		t.Error("expected describe phase to be done and inactive")
	}

	// Jumping ahead marks earlier phases done
	m.updatePhase(PhaseMsg{Phase: "delete stack"})
	if !m.Phases[1].Done {
		t.Error("expected guard phase to be marked done")
	}

	boom := errors.New("boom")
	m.updatePhase(PhaseMsg{Phase: "delete stack", Err: boom})
	if m.Phases[2].Err != boom || m.Phases[2].Active {
		t.Error("expected delete phase to carry the error")
	}

	// Unknown phases are ignored
	m.updatePhase(PhaseMsg{Phase: "unknown"})
}

func TestModelUpdate_Messages(t *testing.T) {
	var model tea.Model = NewDestroyModel("MyAppStaging", "staging", testPhases)

	model, _ = model.Update(StatusMsg{Text: "Deleting SSM parameters..."})
	for i := 0; i < maxWarnings+2; i++ {
		model, _ = model.Update(WarnMsg{Text: "warning"})
	}
	model, _ = model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	model, _ = model.Update(TickMsg{})

	m := model.(Model)
	if m.Activity != "Deleting SSM parameters..." {
		t.Errorf("unexpected activity %q", m.Activity)
	}
	if len(m.Warnings) != maxWarnings {
		t.Errorf("expected %d warnings kept, got %d", maxWarnings, len(m.Warnings))
	}
	if m.Width != 60 || m.SpinnerFrame != 1 {
		t.Errorf("unexpected ui state: width=%d frame=%d", m.Width, m.SpinnerFrame)
	}
}

func TestModelUpdate_Done(t *testing.T) {
	m := NewDestroyModel("MyAppStaging", "staging", testPhases)
	m.Phases[2].Active = true

	model, cmd := m.Update(DoneMsg{Summary: "Successfully destroyed MyAppStaging"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	fm := model.(Model)
	if !fm.Done || fm.Phases[2].Active {
		t.Error("expected model to be done with no active phase")
	}
	if !strings.Contains(fm.View(), "Successfully destroyed MyAppStaging") {
		t.Error("expected summary in view")
	}
}

func TestModelUpdate_QuitAborts(t *testing.T) {
	m := NewDestroyModel("MyAppStaging", "staging", testPhases)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	fm := model.(Model)
	if !fm.Aborted || !errors.Is(fm.Err, ErrAborted) {
		t.Error("expected model to be aborted")
	}
	if !strings.Contains(fm.View(), "Aborted") {
		t.Error("expected aborted status in view")
	}
}

func TestModelUpdate_QuitAfterDoneIsNotAbort(t *testing.T) {
	m := NewDestroyModel("MyAppStaging", "staging", testPhases)
	m.Done = true

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if model.(Model).Aborted {
		t.Error("quitting a finished run must not count as abort")
	}
}

func TestView(t *testing.T) {
	m := NewDestroyModel("MyAppStaging", "staging", testPhases)
	m.Phases[0].Done = true
	m.Phases[1].Active = true
	m.Activity = "Retrieving deployment bucket..."
	m.Warnings = []string{"Could not delete log group /aws/lambda/x: throttled"}

	view := m.View()
	for _, want := range []string{
		"stackrm: MyAppStaging (staging)",
		"Destroying",
		checkMark + " describe stack",
		"guard user data",
		"Retrieving deployment bucket...",
		pending + " delete stack",
		"Could not delete log group",
		"q: abort",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	m.Err = errors.New("boom")
	if !strings.Contains(m.View(), "Error: boom") {
		t.Error("expected error in header")
	}
}

type recordingSender struct{ msgs []tea.Msg }

func (r *recordingSender) Send(msg tea.Msg) { r.msgs = append(r.msgs, msg) }

func TestBridge(t *testing.T) {
	rec := &recordingSender{}
	b := NewBridge(rec)
	boom := errors.New("boom")

	b.PhaseStarted("describe stack")
	b.Status("Destroying %s", "MyAppStaging")
	b.Warn("Could not delete log group %s", "x")
	b.PhaseFinished("describe stack", nil)
	b.PhaseFinished("delete stack", boom)
	b.Done("Successfully destroyed %s", "MyAppStaging")

	want := []tea.Msg{
		PhaseMsg{Phase: "describe stack"},
		StatusMsg{Text: "Destroying MyAppStaging"},
		WarnMsg{Text: "Could not delete log group x"},
		PhaseMsg{Phase: "describe stack", Done: true},
		PhaseMsg{Phase: "delete stack", Err: boom},
		StatusMsg{Text: "Successfully destroyed MyAppStaging"},
	}
	if len(rec.msgs) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(rec.msgs))
	}
	for i := range want {
		if rec.msgs[i] != want[i] {
			t.Errorf("message %d = %#v, want %#v", i, rec.msgs[i], want[i])
		}
	}
}
