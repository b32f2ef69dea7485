package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

func TestTerminalSink_ShowRemaining(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, "Time is up!")

	sink.ShowRemaining(4*time.Minute+59*time.Second, timer.StatePlaying)

	assert.Contains(t, buf.String(), "00:04:59")
	assert.True(t, strings.HasPrefix(buf.String(), "\r"), "should rewrite the line in place")
	assert.NotContains(t, buf.String(), "paused")
}

func TestTerminalSink_ShowRemainingPaused(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, "Time is up!")

	sink.ShowRemaining(30*time.Second, timer.StatePaused)

	assert.Contains(t, buf.String(), "00:00:30")
	assert.Contains(t, buf.String(), "(paused)")
}

func TestTerminalSink_ShowDone(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, "Time is up!")

	sink.ShowDone()

	assert.Contains(t, buf.String(), "00:00:00")
	assert.Contains(t, buf.String(), "Time is up!")
}

func TestNopSink(t *testing.T) {
	var sink NopSink

	// Only verifies the calls are safe.
	sink.ShowRemaining(time.Second, timer.StatePlaying)
	sink.ShowDone()
}
