package server

import (
	"encoding/json"
	"sync"
	"time"

	"truco-game/internal/protocol"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client represents a single WebSocket connection. The player identity and
// room are bound on join and are not tied to the connection itself.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	mu       sync.Mutex
	closed   bool
	playerID string
	roomID   string
	name     string
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
	}
}

// seat returns the player identity and room the client is bound to.
func (c *Client) seat() (playerID, roomID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playerID, c.roomID
}

func (c *Client) bind(playerID, roomID, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playerID, c.roomID, c.name = playerID, roomID, name
}

func (c *Client) unbind() {
	c.bind("", "", "")
}

// deliver queues a message without blocking. It reports false when the
// client is gone or its buffer is full.
func (c *Client) deliver(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// close shuts the send channel once; WritePump then closes the connection.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// ReadPump handles incoming messages from the WebSocket connection. Actions
// are dispatched from this goroutine; rooms serialize them with their own lock.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warnf("Unexpected close from %s: %v", c.conn.RemoteAddr(), err)
			}
			break
		}

		var msg protocol.Message
		if err := json.Unmarshal(messageBytes, &msg); err != nil {
			c.hub.log.Debugf("Error unmarshalling message from %s: %v", c.conn.RemoteAddr(), err)
			c.hub.sendError(c, "BadMessage", "Invalid message format.")
			continue
		}
		c.hub.handleMessage(c, msg)
	}
}

// WritePump handles outgoing messages to the WebSocket connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.log.Debugf("Write error to %s: %v", c.conn.RemoteAddr(), err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
