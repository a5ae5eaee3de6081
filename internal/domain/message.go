package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is append-only: created once on a successful send, never edited
// or deleted. Seq is assigned by the store and breaks created_at ties.
type Message struct {
	ID         uuid.UUID `json:"id"`
	Seq        int64     `json:"-"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Text       *string   `json:"text,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasContent reports whether the message carries text or an image.
// A message with neither is rejected before it reaches the store.
func (m *Message) HasContent() bool {
	return (m.Text != nil && *m.Text != "") || (m.ImageURL != nil && *m.ImageURL != "")
}
