package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/domain"
)

// Event types - Server → Client
const (
	// EventTypeNewMessage carries one persisted message, pushed to the
	// receiver only.
	EventTypeNewMessage = "newMessage"
	// EventTypeOnlineUsers carries the full online-user-id set. Clients
	// replace their local view with it; there is no diff protocol.
	EventTypeOnlineUsers = "getOnlineUsers"
	EventTypePong        = "pong"
	EventTypeError       = "error"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

type MessagePayload struct {
	domain.Message
}

type OnlineUsersPayload struct {
	UserIDs []uuid.UUID `json:"user_ids"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
