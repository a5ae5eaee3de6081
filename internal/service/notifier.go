package service

import (
	"github.com/google/uuid"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/domain"
)

// Notifier is the push side of the relay. Implementations are best-effort:
// a missing or dead connection is not an error the relay cares about.
type Notifier interface {
	NotifyNewMessage(receiverID uuid.UUID, msg *domain.Message)
}
