package auth

import (
	"context"
	"errors"
)

// Expected outcomes of the use cases. Anything not in this list is treated as
// an internal fault by the transport layer.
var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPassword = errors.New("invalid password format")
	ErrAccountExists   = errors.New("existing user")
	ErrNotFound        = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrSubjectMismatch = errors.New("token subject does not match target user")
)

// AccountRepository abstracts persistence concerns from the domain layer.
//
// UpdatePasswordHash and Delete are guarded by the currently stored hash: the
// mutation applies only if the stored hash still equals the one the caller
// read. On a failed guard both report ErrNotFound when the account is gone and
// ErrWrongPassword when the stored hash was replaced concurrently, so the
// read-verify-mutate sequence stays consistent without cross-request locking.
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash string) error
	GetByEmail(ctx context.Context, email string) (Account, error)
	UpdatePasswordHash(ctx context.Context, email, oldHash, newHash string) error
	Delete(ctx context.Context, email, passwordHash string) error
}
