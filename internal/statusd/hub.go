package statusd

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// Hub fans countdown status updates out to every connected websocket
// subscriber. All client bookkeeping happens on the run loop goroutine so no
// map access ever races.
type Hub struct {
	log        zerolog.Logger
	clients    map[string]*client
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub creates a hub. Start must be called before any subscriber joins.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[string]*client),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

// Start runs the hub loop until Close is called.
func (h *Hub) Start() {
	for {
		select {
		case c := <-h.register:
			h.clients[c.id] = c
			h.log.Debug().Str("client", c.id).Msg("websocket subscriber joined")
		case c := <-h.unregister:
			if _, ok := h.clients[c.id]; ok {
				delete(h.clients, c.id)
				// The loop is the only sender, so it owns closing send
				close(c.send)
				h.log.Debug().Str("client", c.id).Msg("websocket subscriber left")
			}
		case payload := <-h.broadcast:
			for _, c := range h.clients {
				select {
				case c.send <- payload:
				default:
					// A subscriber that cannot keep up just misses a tick
				}
			}
		case <-h.done:
			for _, c := range h.clients {
				close(c.send)
				_ = c.conn.Close()
			}
			h.clients = make(map[string]*client)
			return
		}
	}
}

// Join registers a new subscriber connection and starts its pumps. It returns
// once both pumps are running.
func (h *Hub) Join(conn *websocket.Conn) {
	c := newClient(uuid.NewString(), h, conn)

	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go c.ReadPump(&wg)
	go c.WritePump(&wg)
	wg.Wait()
}

// Broadcast queues a payload for every connected subscriber.
func (h *Hub) Broadcast(payload []byte) {
	select {
	case h.broadcast <- payload:
	case <-h.done:
	}
}

// Close shuts the hub down and disconnects every subscriber.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}
