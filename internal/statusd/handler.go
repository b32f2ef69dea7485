package statusd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/unrolled/render"

	"github.com/aleksandrpnshkn/gnome-timer/internal/api"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
)

// Handler exposes the countdown API over HTTP and websocket.
type Handler struct {
	log    zerolog.Logger
	render *render.Render
	api    api.API
	hub    *Hub
}

// NewHandler creates a new Handler instance.
func NewHandler(log zerolog.Logger, render *render.Render, a api.API, hub *Hub) *Handler {
	return &Handler{
		log:    log,
		render: render,
		api:    a,
		hub:    hub,
	}
}

// StartCountdown begins a countdown from a JSON body.
func (h *Handler) StartCountdown(w http.ResponseWriter, r *http.Request) {
	var start StartCountdownRequest
	if err := unmarshalJSONRequestBody(r, &start); err != nil {
		writeJSONResponse(h.render, w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}
	if err := h.api.Start(r.Context(), start.Duration); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSONResponse(h.render, w, http.StatusCreated, StatusResponse{Status: h.api.Status()})
}

// PauseCountdown suspends the running countdown.
func (h *Handler) PauseCountdown(w http.ResponseWriter, r *http.Request) {
	if err := h.api.Pause(); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSONResponse(h.render, w, http.StatusOK, StatusResponse{Status: h.api.Status()})
}

// ResumeCountdown continues a paused countdown.
func (h *Handler) ResumeCountdown(w http.ResponseWriter, r *http.Request) {
	if err := h.api.Resume(); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSONResponse(h.render, w, http.StatusOK, StatusResponse{Status: h.api.Status()})
}

// StopCountdown aborts the current countdown.
func (h *Handler) StopCountdown(w http.ResponseWriter, r *http.Request) {
	if err := h.api.Stop(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSONResponse(h.render, w, http.StatusOK, StatusResponse{Status: h.api.Status()})
}

// GetStatus returns the current countdown snapshot.
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(h.render, w, http.StatusOK, StatusResponse{Status: h.api.Status()})
}

// GetHistory returns recorded countdowns, optionally filtered by the "since"
// time shorthand and the "completed" flag.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	since := r.URL.Query().Get("since")
	completedOnly := r.URL.Query().Get("completed") == "true"

	var entries interface{}
	var err error
	if since == "" && !completedOnly {
		entries, err = h.api.ListHistory(r.Context())
	} else {
		entries, err = h.api.SearchHistory(r.Context(), since, completedOnly)
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSONResponse(h.render, w, http.StatusOK, entries)
}

// ClearHistory deletes all recorded countdowns.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.api.ClearHistory(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSONResponse(h.render, w, http.StatusOK, ClearHistoryResponse{Deleted: deleted})
}

// Subscribe upgrades the connection and streams status updates until the peer
// disconnects.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		writeJSONResponse(h.render, w, http.StatusInternalServerError, errorResponse{Message: "failed to upgrade websocket connection"})
		return
	}
	h.hub.Join(conn)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(http.StatusText(http.StatusOK)))
}

// writeError maps application errors onto HTTP status codes.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	writeJSONResponse(h.render, w, statusCodeOf(err), errorResponse{Message: errors.GetUserMessage(err)})
}

func statusCodeOf(err error) int {
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeValidation),
		errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		return http.StatusBadRequest
	case errors.IsErrorType(err, errors.ErrorTypeInvalidState):
		return http.StatusConflict
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSONResponse(render *render.Render, w http.ResponseWriter, statusCode int, responseModel interface{}) {
	if err := render.JSON(w, statusCode, responseModel); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func unmarshalJSONRequestBody(r *http.Request, output interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("invalid request body")
	}

	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, &output); err != nil {
		return err
	}
	return nil
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
