package statusd

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second    // time allowed to write a message to the peer
	pongWait       = 60 * time.Second    // time allowed to read the next pong message from the peer
	pingPeriod     = (pongWait * 9) / 10 // send pings to peer with this period. Must be less than pongWait
	maxMessageSize = 512                 // maximum message size allowed from peer
)

// client is a single websocket subscriber receiving status updates
type client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(id string, hub *Hub, conn *websocket.Conn) *client {
	return &client{
		id:   id,
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 8),
	}
}

// ReadPump drains the connection. Subscribers never send meaningful payloads;
// reading is only needed to process pongs and detect closure.
func (c *client) ReadPump(wg *sync.WaitGroup) {
	defer c.Close()
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error { _ = c.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	wg.Done()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway) {
				c.hub.log.Debug().Err(err).Msg("websocket unexpected close error")
			}
			break
		}
	}
}

// WritePump forwards broadcast payloads to the peer and keeps it alive with
// periodic pings.
func (c *client) WritePump(wg *sync.WaitGroup) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()
	wg.Done()
	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				_ = c.writeMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.writeMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.writeMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

func (c *client) writeMessage(msgType int, payload []byte) error {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(msgType, payload)
}

func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	select {
	case c.hub.unregister <- c:
	case <-c.hub.done:
	}
	return c.conn.Close()
}
