package repository

import (
	"context"

	"github.com/deppfellow/usersvc/internal/model/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// Create inserts u and returns the stored row.
//
// A duplicate email surfaces as a unique violation on users_email_key.
func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	stmt := `
		INSERT INTO users (id, name, email, password_hash)
		VALUES (@id, @name, @email, @password_hash)
		RETURNING ` + userColumns

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{
		"id":            u.ID,
		"name":          u.Name,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
	})
	if err != nil {
		return nil, err
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[user.User])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns pgx.ErrNoRows when no user has id.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	stmt := `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	rows, err := r.db.Query(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, err
	}

	found, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[user.User])
	if err != nil {
		return nil, err
	}
	return &found, nil
}
