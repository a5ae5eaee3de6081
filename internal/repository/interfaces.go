package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListOthers(ctx context.Context, excludeID uuid.UUID) ([]domain.User, error)
	UpdateProfilePic(ctx context.Context, id uuid.UUID, url string) (*domain.User, error)
}

// MessageRepository is append-only. ListConversation returns both directions
// of traffic between the two users in ascending created_at order with the
// assignment sequence as tiebreak; LastMessage returns the newest such
// message or nil. The two are consistent: the last element of
// ListConversation is always what LastMessage reports.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]domain.Message, error)
	LastMessage(ctx context.Context, userA, userB uuid.UUID) (*domain.Message, error)
}
