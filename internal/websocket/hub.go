package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains the set of connected dashboard clients and fans claim
// events out to all of them.
type Hub struct {
	// Registered clients map: ClientID -> Client
	clients map[string]*Client

	// Register requests
	register chan *Client

	// Unregister requests
	unregister chan *Client

	// Outbound event fan-out
	broadcast chan []byte

	// Mutex for thread-safe access to clients map
	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[string]*Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				close(old.send)
			}
			h.clients[client.ID] = client
			h.mu.Unlock()
			log.Printf("📱 Dashboard client connected: %s", client.ID)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.send)
				log.Printf("📴 Dashboard client disconnected: %s", client.ID)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Buffer full or client dead, drop for this client
				}
			}
			h.mu.RUnlock()
		}
	}
}

// ClaimEvent is the wire format of a claim notification
type ClaimEvent struct {
	Type    string      `json:"type"`
	ClaimID string      `json:"claimId"`
	Status  string      `json:"status,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// Broadcast queues an event for every connected client
func (h *Hub) Broadcast(event ClaimEvent) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		log.Printf("⚠️ Event queue full, dropping %s for claim %s", event.Type, event.ClaimID)
	}
}

// ClaimSubmitted notifies dashboards about a freshly filed claim
func (h *Hub) ClaimSubmitted(claimID string, payload interface{}) {
	h.Broadcast(ClaimEvent{Type: "claim_submitted", ClaimID: claimID, Payload: payload})
}

// ClaimStatusChanged notifies dashboards about a lifecycle transition
func (h *Hub) ClaimStatusChanged(claimID, status string) {
	h.Broadcast(ClaimEvent{Type: "claim_status_changed", ClaimID: claimID, Status: status})
}
