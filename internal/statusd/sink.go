package statusd

import (
	"encoding/json"
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/display"
	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/services"
	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

// HubSink adapts the websocket hub into a display sink so every refresh tick
// reaches all connected subscribers.
type HubSink struct {
	hub        *Hub
	configured func() domain.Duration
}

var _ display.Sink = (*HubSink)(nil)

// NewHubSink creates a sink broadcasting through the given hub. The configured
// callback supplies the configured duration for status payloads and may be nil.
func NewHubSink(hub *Hub, configured func() domain.Duration) *HubSink {
	return &HubSink{hub: hub, configured: configured}
}

// ShowRemaining broadcasts a status payload.
func (s *HubSink) ShowRemaining(remaining time.Duration, state timer.State) {
	s.publish("status", services.StatusView{
		State:      state.String(),
		Configured: s.configuredString(),
		Remaining:  domain.DurationFromStd(remaining).String(),
	})
}

// ShowDone broadcasts the terminal payload.
func (s *HubSink) ShowDone() {
	s.publish("done", services.StatusView{
		State:      timer.StateStopped.String(),
		Configured: s.configuredString(),
		Remaining:  domain.Duration{}.String(),
	})
}

func (s *HubSink) publish(msgType string, status services.StatusView) {
	payload, err := json.Marshal(statusMessage{Type: msgType, Status: status})
	if err != nil {
		return
	}
	s.hub.Broadcast(payload)
}

func (s *HubSink) configuredString() string {
	if s.configured == nil {
		return domain.Duration{}.String()
	}
	return s.configured().String()
}
