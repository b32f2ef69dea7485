package display

import (
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

// Sink is an abstract consumer of countdown progress for presentation.
// The refresh loop pushes the remaining time into a Sink on every tick and
// signals completion exactly once when the countdown reaches zero.
type Sink interface {
	// ShowRemaining presents the remaining time and the lifecycle state
	// (the state selects the play/pause indicator).
	ShowRemaining(remaining time.Duration, state timer.State)

	// ShowDone presents the completion of the countdown.
	ShowDone()
}

// NopSink discards everything. Useful when no display is attached.
type NopSink struct{}

// ShowRemaining discards the tick.
func (NopSink) ShowRemaining(time.Duration, timer.State) {}

// ShowDone discards the completion signal.
func (NopSink) ShowDone() {}
