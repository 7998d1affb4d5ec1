package auth

import (
	"context"
	"errors"
	"fmt"
)

// AuthUseCase describes the credential lifecycle: registration, login,
// password rotation and account deletion. Expected failures come back as the
// sentinel errors declared in this package; anything else is an internal
// fault.
type AuthUseCase interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	ChangePassword(ctx context.Context, subject, email, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, subject, email, password string) error
}

type authService struct {
	repo   AccountRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo AccountRepository, hasher PasswordHasher, tokens TokenIssuer) AuthUseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, email, password string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if !ValidPassword(password) {
		return ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	// Uniqueness is left to the storage constraint; a pre-read would only
	// reintroduce the check-then-create race.
	return s.repo.Create(ctx, email, hash)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if !ValidEmail(email) {
		return "", ErrInvalidEmail
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

func (s *authService) ChangePassword(ctx context.Context, subject, email, currentPassword, newPassword string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if !ValidPassword(newPassword) {
		return ErrInvalidPassword
	}
	// Confused-deputy guard: the authenticated subject may only rotate its
	// own credential.
	if subject != email {
		return ErrSubjectMismatch
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, account.PasswordHash) {
		return ErrWrongPassword
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	// Guarded by the hash we just verified; a concurrent rotation surfaces
	// as ErrWrongPassword instead of being overwritten.
	return s.repo.UpdatePasswordHash(ctx, email, account.PasswordHash, newHash)
}

func (s *authService) DeleteAccount(ctx context.Context, subject, email, password string) error {
	if !ValidEmail(email) {
		return ErrInvalidEmail
	}
	if subject != email {
		return ErrSubjectMismatch
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		// Deletion is idempotent: an absent account is already the goal state.
		return nil
	}
	if err != nil {
		return err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return ErrWrongPassword
	}

	err = s.repo.Delete(ctx, email, account.PasswordHash)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
