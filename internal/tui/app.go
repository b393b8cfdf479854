// Package tui renders import progress on a terminal with bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/issue-import/internal/domain"
)

// ErrDisplay marks a failure of the progress display itself, as opposed to
// a failure of the work it was showing.
var ErrDisplay = errors.New("progress display failed")

// Model is the bubbletea model of the progress display: a spinner with the
// latest status line. Warnings and errors are printed above it.
type Model struct {
	cancel   context.CancelFunc
	err      error
	styles   Styles
	status   string
	spinner  spinner.Model
	minLevel domain.Level
	done     bool
	aborted  bool
}

// NewModel creates a new Model. cancel is called when the user interrupts.
// Events below minLevel are not printed.
func NewModel(cancel context.CancelFunc, minLevel domain.Level) *Model {
	styles := DefaultStyles()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner
	return &Model{
		cancel:   cancel,
		styles:   styles,
		status:   "Starting",
		spinner:  s,
		minLevel: minLevel,
	}
}

// Err returns the error the work finished with.
func (m *Model) Err() error {
	return m.err
}

// Aborted reports whether the user interrupted the run.
func (m *Model) Aborted() bool {
	return m.aborted
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Run executes work while rendering progress on out. Events reported by
// work are shown in the display. It returns the error work returned, or an
// error wrapping ErrDisplay when the display could not run.
func Run(ctx context.Context, out io.Writer, minLevel domain.Level, work func(context.Context, domain.Reporter) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(cancel, minLevel)
	p := tea.NewProgram(m, tea.WithOutput(out))

	errCh := make(chan error, 1)
	go func() {
		err := work(ctx, NewProgramReporter(p))
		p.Send(MsgDone{Err: err})
		errCh <- err
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-errCh
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}
	return <-errCh
}

// sender is the part of *tea.Program used by ProgramReporter.
type sender interface {
	Send(msg tea.Msg)
}

// Ensure ProgramReporter implements domain.Reporter.
var _ domain.Reporter = (*ProgramReporter)(nil)

// ProgramReporter forwards events to a running program.
type ProgramReporter struct {
	program sender
}

// NewProgramReporter creates a reporter sending to p.
func NewProgramReporter(p sender) *ProgramReporter {
	return &ProgramReporter{program: p}
}

// Report sends the event to the program.
func (r *ProgramReporter) Report(event domain.Event) {
	r.program.Send(MsgEvent{Event: event})
}
