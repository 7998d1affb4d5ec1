package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artem13815/auth/pkg/auth"
)

// DB is the slice of pgxpool.Pool the repository needs. Narrow on purpose so
// pgxmock can stand in for tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AccountRepository implements auth.AccountRepository backed by PostgreSQL (pgx).
type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (email, password_hash)
		VALUES ($1, $2)
	`, email, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return auth.ErrAccountExists
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (auth.Account, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash
		FROM accounts WHERE email = $1
	`, email)
	var account auth.Account
	if err := row.Scan(&account.ID, &account.Email, &account.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Account{}, auth.ErrNotFound
		}
		return auth.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// UpdatePasswordHash replaces the stored hash only while it still equals
// oldHash. Zero affected rows mean the account vanished or was rotated by a
// concurrent request; resolveGuardFailure tells the two apart.
func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, email, oldHash, newHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts SET password_hash = $1
		WHERE email = $2 AND password_hash = $3
	`, newHash, email, oldHash)
	if err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.resolveGuardFailure(ctx, email)
	}
	return nil
}

// Delete removes the account only while the stored hash equals passwordHash.
func (r *AccountRepository) Delete(ctx context.Context, email, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM accounts
		WHERE email = $1 AND password_hash = $2
	`, email, passwordHash)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.resolveGuardFailure(ctx, email)
	}
	return nil
}

func (r *AccountRepository) resolveGuardFailure(ctx context.Context, email string) error {
	if _, err := r.GetByEmail(ctx, email); err != nil {
		return err // auth.ErrNotFound or a real storage fault
	}
	return auth.ErrWrongPassword
}
