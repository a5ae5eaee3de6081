package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	PasswordHash  string    `json:"-"`
	ProfilePicURL *string   `json:"profile_pic_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
