package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// EventType represents the type of dashboard event
type EventType string

const (
	EventTypeContactCreated EventType = "contact_created"
	EventTypeImageUploaded  EventType = "image_uploaded"
	EventTypeError          EventType = "error"
)

// Event represents a dashboard event pushed to connected admins
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ContactCreatedPayload notifies admins of a new contact submission
type ContactCreatedPayload struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ImageUploadedPayload notifies admins of a new image upload
type ImageUploadedPayload struct {
	ID          uint   `json:"id"`
	AlbumID     uint   `json:"album_id"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// Hub maintains the set of connected admin clients and broadcasts
// dashboard events to all of them. Every connection is already
// authenticated, so there is no per-topic subscription model.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	// Broadcast to all connected clients
	broadcast chan []byte

	// Mutex for thread-safe operations
	mu sync.RWMutex

	// Logger
	logger *slog.Logger
}

// NewHub creates a new Hub instance
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		logger:     logger,
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("dashboard client registered")
			}

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			if h.logger != nil {
				h.logger.Debug("dashboard client unregistered")
			}

		case msg := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Client buffer full, skip
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastContactCreated pushes a contact notification to all clients
func (h *Hub) BroadcastContactCreated(payload *ContactCreatedPayload) {
	h.broadcastEvent(Event{Type: EventTypeContactCreated, Payload: payload})
}

// BroadcastImageUploaded pushes an upload notification to all clients
func (h *Hub) BroadcastImageUploaded(payload *ImageUploadedPayload) {
	h.broadcastEvent(Event{Type: EventTypeImageUploaded, Payload: payload})
}

func (h *Hub) broadcastEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to marshal dashboard event", slog.Any("error", err))
		}
		return
	}

	h.broadcast <- data
}
