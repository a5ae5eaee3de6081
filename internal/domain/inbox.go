package domain

import (
	"time"

	"github.com/google/uuid"
)

// LastMessageSummary is what the sidebar shows for a conversation.
type LastMessageSummary struct {
	Text      *string   `json:"text,omitempty"`
	IsImage   bool      `json:"is_image"`
	CreatedAt time.Time `json:"created_at"`
}

// InboxEntry pairs another user with the most recent message shared with
// the viewer, nil when the two have never talked.
type InboxEntry struct {
	UserID        uuid.UUID           `json:"id"`
	FullName      string              `json:"full_name"`
	ProfilePicURL *string             `json:"profile_pic_url,omitempty"`
	LastMessage   *LastMessageSummary `json:"last_message"`
}
