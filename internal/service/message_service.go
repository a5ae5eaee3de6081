package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/domain"
	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/repository"
)

var (
	ErrEmptyMessage = errors.New("message must have text or an image")
	ErrUserNotFound = errors.New("user not found")
)

// inboxFanOutLimit bounds concurrent last-message lookups in GetInbox.
const inboxFanOutLimit = 8

type MessageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
	notifier Notifier
}

func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

// SetNotifier wires the push side after construction (the hub needs the
// service's output, the service needs the hub).
func (s *MessageService) SetNotifier(n Notifier) {
	s.notifier = n
}

// SendMessage validates, persists and then best-effort pushes the message to
// the receiver's live connection. Persistence is the success criterion: a
// receiver without a connection (or a dead one) does not fail the send.
// Self-messages are allowed.
func (s *MessageService) SendMessage(ctx context.Context, senderID, receiverID uuid.UUID, text, imageURL string) (*domain.Message, error) {
	msg := &domain.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		CreatedAt:  time.Now(),
	}
	if text != "" {
		msg.Text = &text
	}
	if imageURL != "" {
		msg.ImageURL = &imageURL
	}

	if !msg.HasContent() {
		return nil, ErrEmptyMessage
	}

	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		return nil, fmt.Errorf("looking up receiver: %w", err)
	}
	if receiver == nil {
		return nil, ErrUserNotFound
	}

	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(receiverID, msg)
	}

	return msg, nil
}

// GetHistory returns the full two-way conversation between two users in
// chronological order. An empty conversation is not an error.
func (s *MessageService) GetHistory(ctx context.Context, userA, userB uuid.UUID) ([]domain.Message, error) {
	messages, err := s.msgRepo.ListConversation(ctx, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("listing conversation: %w", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}

// GetInbox builds the sidebar view: every other user, each with the most
// recent message shared with the viewer. Users the viewer has talked to come
// first, most recent conversation on top; the rest keep directory order.
func (s *MessageService) GetInbox(ctx context.Context, viewerID uuid.UUID) ([]domain.InboxEntry, error) {
	users, err := s.userRepo.ListOthers(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	entries := make([]domain.InboxEntry, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inboxFanOutLimit)
	for i, u := range users {
		i, u := i, u // keep per-iteration semantics under Go <1.22
		g.Go(func() error {
			last, err := s.msgRepo.LastMessage(gctx, viewerID, u.ID)
			if err != nil {
				return fmt.Errorf("last message for %s: %w", u.ID, err)
			}
			entry := domain.InboxEntry{
				UserID:        u.ID,
				FullName:      u.FullName,
				ProfilePicURL: u.ProfilePicURL,
			}
			if last != nil {
				entry.LastMessage = &domain.LastMessageSummary{
					Text:      last.Text,
					IsImage:   last.ImageURL != nil,
					CreatedAt: last.CreatedAt,
				}
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].LastMessage, entries[j].LastMessage
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return entries, nil
}
