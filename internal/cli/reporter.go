package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/runoshun/issue-import/internal/domain"
	"github.com/runoshun/issue-import/internal/tui"
)

// Ensure consoleReporter implements domain.Reporter.
var _ domain.Reporter = (*consoleReporter)(nil)

// consoleReporter prints events as lines, one per event.
type consoleReporter struct {
	w        io.Writer
	styles   tui.Styles
	mu       sync.Mutex
	minLevel domain.Level
}

func newConsoleReporter(w io.Writer, minLevel domain.Level) *consoleReporter {
	return &consoleReporter{w: w, styles: tui.DefaultStyles(), minLevel: minLevel}
}

// Report prints the event when it is at or above the minimum level.
func (r *consoleReporter) Report(e domain.Event) {
	if e.Level < r.minLevel {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, r.styles.FormatEvent(e))
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
