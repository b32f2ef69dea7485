package statusd

import (
	"github.com/aleksandrpnshkn/gnome-timer/internal/services"
)

// StartCountdownRequest is the JSON body accepted by the start endpoint
type StartCountdownRequest struct {
	Duration string `json:"duration"`
}

// StatusResponse is returned by the status endpoint
type StatusResponse struct {
	Status services.StatusView `json:"status"`
}

// HistoryResponse is returned by the history endpoint
type HistoryResponse struct {
	Entries []*services.HistoryEntry `json:"entries"`
}

// ClearHistoryResponse reports how many recorded countdowns were removed
type ClearHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// statusMessage is pushed to websocket subscribers on every refresh tick
type statusMessage struct {
	Type   string              `json:"type"` // "status" while counting, "done" on expiry
	Status services.StatusView `json:"status"`
}
