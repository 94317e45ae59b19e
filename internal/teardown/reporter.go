package teardown

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives human-readable progress from a destroy run.
// Implementations must be safe for concurrent use.
type Reporter interface {
	Status(format string, args ...any)
	Warn(format string, args ...any)
	Done(format string, args ...any)
	Error(format string, args ...any)
}

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorDim    = lipgloss.Color("#6b7280")
)

// ConsoleReporter writes styled progress lines to a writer.
// Styling is dropped automatically when the writer is not a terminal.
type ConsoleReporter struct {
	mu     sync.Mutex
	w      io.Writer
	status lipgloss.Style
	warn   lipgloss.Style
	done   lipgloss.Style
	err    lipgloss.Style
	dim    lipgloss.Style
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	r := lipgloss.NewRenderer(w)
	return &ConsoleReporter{
		w:      w,
		status: r.NewStyle(),
		warn:   r.NewStyle().Foreground(colorYellow),
		done:   r.NewStyle().Foreground(colorGreen).Bold(true),
		err:    r.NewStyle().Foreground(colorRed).Bold(true),
		dim:    r.NewStyle().Foreground(colorDim),
	}
}

func (c *ConsoleReporter) Status(format string, args ...any) {
	c.line(c.dim.Render("⚬"), c.status.Render(fmt.Sprintf(format, args...)))
}

func (c *ConsoleReporter) Warn(format string, args ...any) {
	c.line(c.warn.Render("⚠"), c.warn.Render(fmt.Sprintf(format, args...)))
}

func (c *ConsoleReporter) Done(format string, args ...any) {
	c.line(c.done.Render("✓"), c.done.Render(fmt.Sprintf(format, args...)))
}

func (c *ConsoleReporter) Error(format string, args ...any) {
	c.line(c.err.Render("✗"), c.err.Render(fmt.Sprintf(format, args...)))
}

func (c *ConsoleReporter) line(icon, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.w, "%s %s\n", icon, text)
}

// QuietReporter discards progress output. Warnings are counted.
type QuietReporter struct {
	warnings atomic.Int64
}

// NewQuietReporter creates a reporter that prints nothing.
func NewQuietReporter() *QuietReporter {
	return &QuietReporter{}
}

func (q *QuietReporter) Status(string, ...any) {}
func (q *QuietReporter) Done(string, ...any)   {}
func (q *QuietReporter) Error(string, ...any)  {}

func (q *QuietReporter) Warn(string, ...any) {
	q.warnings.Add(1)
}

// Warnings returns how many warnings were reported.
func (q *QuietReporter) Warnings() int {
	return int(q.warnings.Load())
}
