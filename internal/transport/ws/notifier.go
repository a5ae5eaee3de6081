package ws

import (
	"log"

	"github.com/google/uuid"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifyNewMessage pushes a persisted message to the receiver if online.
// Best-effort only: no registered connection means no push, no error.
func (n *HubNotifier) NotifyNewMessage(receiverID uuid.UUID, msg *domain.Message) {
	evt, err := NewEvent(EventTypeNewMessage, MessagePayload{Message: *msg})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(receiverID, evt)
}
