package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/domain"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	// seq comes from the sequence so concurrent inserts with equal
	// created_at still have a deterministic order.
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, text, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq`

	return r.pool.QueryRow(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Text, msg.ImageURL, msg.CreatedAt,
	).Scan(&msg.Seq)
}

func (r *MessageRepo) ListConversation(ctx context.Context, userA, userB uuid.UUID) ([]domain.Message, error) {
	query := `
		SELECT id, seq, sender_id, receiver_id, text, image_url, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at, seq`

	rows, err := r.pool.Query(ctx, query, userA, userB)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(
			&m.ID, &m.Seq, &m.SenderID, &m.ReceiverID,
			&m.Text, &m.ImageURL, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepo) LastMessage(ctx context.Context, userA, userB uuid.UUID) (*domain.Message, error) {
	query := `
		SELECT id, seq, sender_id, receiver_id, text, image_url, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at DESC, seq DESC
		LIMIT 1`

	var m domain.Message
	err := r.pool.QueryRow(ctx, query, userA, userB).Scan(
		&m.ID, &m.Seq, &m.SenderID, &m.ReceiverID,
		&m.Text, &m.ImageURL, &m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &m, err
}
