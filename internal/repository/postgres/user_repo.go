package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayaSaleh717/fullstack-chat-app-master/internal/domain"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, full_name, password_hash, profile_pic_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.FullName,
		user.PasswordHash, user.ProfilePicURL, user.CreatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, email, full_name, password_hash, profile_pic_url, created_at FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, email, full_name, password_hash, profile_pic_url, created_at FROM users WHERE email = $1", email)
}

func (r *UserRepo) ListOthers(ctx context.Context, excludeID uuid.UUID) ([]domain.User, error) {
	query := `
		SELECT id, email, full_name, password_hash, profile_pic_url, created_at
		FROM users
		WHERE id <> $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FullName,
			&u.PasswordHash, &u.ProfilePicURL, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) UpdateProfilePic(ctx context.Context, id uuid.UUID, url string) (*domain.User, error) {
	query := `
		UPDATE users SET profile_pic_url = $1 WHERE id = $2
		RETURNING id, email, full_name, password_hash, profile_pic_url, created_at`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, url, id).Scan(
		&u.ID, &u.Email, &u.FullName,
		&u.PasswordHash, &u.ProfilePicURL, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.FullName,
		&u.PasswordHash, &u.ProfilePicURL, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return &u, err
}
