package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Hub is the authoritative record of who is online: a thread-safe map from
// user ID to that user's single live connection. One mutex serializes all
// registrations; lookups and snapshots take the read side.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*Client),
	}
}

// Register installs the client as its user's live connection and returns the
// connection it superseded, if any. Last connection wins; the caller owns
// closing the superseded one. The updated online set is broadcast to every
// client, the new one included.
func (h *Hub) Register(client *Client) (superseded *Client) {
	h.mu.Lock()
	superseded = h.clients[client.userID]
	h.clients[client.userID] = client
	total := len(h.clients)
	h.broadcastOnlineUsersLocked()
	h.mu.Unlock()

	log.Printf("ws hub: user %s connected (%d online)", client.userID, total)
	return superseded
}

// Unregister removes the client's entry only if it is still the stored one.
// A disconnect for a superseded connection must not evict the newer
// registration, so a mismatch is a no-op. Reports whether the set changed.
func (h *Hub) Unregister(client *Client) bool {
	h.mu.Lock()
	current, ok := h.clients[client.userID]
	if !ok || current != client {
		h.mu.Unlock()
		return false
	}
	delete(h.clients, client.userID)
	total := len(h.clients)
	h.broadcastOnlineUsersLocked()
	h.mu.Unlock()

	log.Printf("ws hub: user %s disconnected (%d online)", client.userID, total)
	return true
}

// Lookup returns the user's live connection, nil when offline.
func (h *Hub) Lookup(userID uuid.UUID) *Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients[userID]
}

// SnapshotOnlineIDs returns a point-in-time set of online user IDs.
func (h *Hub) SnapshotOnlineIDs() []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return lo.Keys(h.clients)
}

// SendToUser delivers an event to one user's connection if present. Delivery
// is fire-and-forget: an offline user or a full send buffer drops the event.
func (h *Hub) SendToUser(userID uuid.UUID, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	if client := h.Lookup(userID); client != nil {
		client.trySend(data)
	}
}

// broadcastOnlineUsersLocked pushes the full online set to every connected
// client. Callers hold the write lock: snapshotting and queueing happen
// atomically with the mutation, so every client sees the snapshots in the
// order the registry changed. trySend never blocks, so holding the lock
// across the fan-out is safe.
func (h *Hub) broadcastOnlineUsersLocked() {
	evt, err := NewEvent(EventTypeOnlineUsers, OnlineUsersPayload{UserIDs: lo.Keys(h.clients)})
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("ws hub: marshal error: %v", err)
		return
	}
	for _, client := range h.clients {
		client.trySend(data)
	}
}
