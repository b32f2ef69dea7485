package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

// TerminalSink renders the countdown on a terminal, rewriting a single line
// in place so the output behaves like a status-bar label.
type TerminalSink struct {
	mu       sync.Mutex
	w        io.Writer
	doneText string
}

// NewTerminalSink creates a TerminalSink writing to w. The done text is shown
// once when the countdown completes.
func NewTerminalSink(w io.Writer, doneText string) *TerminalSink {
	return &TerminalSink{
		w:        w,
		doneText: doneText,
	}
}

// ShowRemaining rewrites the current line with the formatted remaining time.
// A paused countdown is marked so the frozen value is not mistaken for a
// stuck display.
func (s *TerminalSink) ShowRemaining(remaining time.Duration, state timer.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	suffix := ""
	if state == timer.StatePaused {
		suffix = " (paused)"
	}
	fmt.Fprintf(s.w, "\r%s%s  ", domain.DurationFromStd(remaining), suffix)
}

// ShowDone finishes the countdown line and prints the done text.
func (s *TerminalSink) ShowDone() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintf(s.w, "\r%s  \n%s\n", domain.Duration{}, s.doneText)
}
