package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"fieldtofork/pkg/logger"
)

// Client represents one connected device.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Event is the envelope pushed to clients. Screens that previously held a
// Firestore listener (catalog, chat, typing, notifications, orders) receive
// full snapshots through these events instead.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Manager tracks active connections per user.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Info("Client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.UserID]; ok {
					delete(m.clients, client.UserID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Info("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// PushEvent sends an event to one user if connected. Delivery is best
// effort; an offline user simply misses the push and reads state on the
// next fetch.
func (m *Manager) PushEvent(userID string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode event %q: %v", event.Type, err)
		return
	}

	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- data:
	default:
		logger.Warn("Dropping event %q for slow client %s", event.Type, userID)
	}
}

// Broadcast sends an event to every connected user, used for catalog
// snapshots that every browsing client watches.
func (m *Manager) Broadcast(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode event %q: %v", event.Type, err)
		return
	}

	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, client := range m.clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// PushToUser wraps PushEvent for callers that only hold the event type and
// payload.
func (m *Manager) PushToUser(userID string, eventType string, payload interface{}) {
	m.PushEvent(userID, Event{Type: eventType, Payload: payload})
}

// BroadcastAll wraps Broadcast the same way.
func (m *Manager) BroadcastAll(eventType string, payload interface{}) {
	m.Broadcast(Event{Type: eventType, Payload: payload})
}

// ReadPump drains the connection until it closes.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Error("websocket read: %v", err)
			}
			break
		}
	}
}

// WritePump forwards queued events to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}
