package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory AccountRepository with the same guard semantics as
// the postgres implementation.
type fakeRepo struct {
	accounts map[string]Account
	nextID   int64
	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: make(map[string]Account)}
}

func (r *fakeRepo) Create(_ context.Context, email, passwordHash string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.accounts[email]; ok {
		return ErrAccountExists
	}
	r.nextID++
	r.accounts[email] = Account{ID: r.nextID, Email: email, PasswordHash: passwordHash}
	return nil
}

func (r *fakeRepo) GetByEmail(_ context.Context, email string) (Account, error) {
	if r.failWith != nil {
		return Account{}, r.failWith
	}
	account, ok := r.accounts[email]
	if !ok {
		return Account{}, ErrNotFound
	}
	return account, nil
}

func (r *fakeRepo) UpdatePasswordHash(_ context.Context, email, oldHash, newHash string) error {
	account, ok := r.accounts[email]
	if !ok {
		return ErrNotFound
	}
	if account.PasswordHash != oldHash {
		return ErrWrongPassword
	}
	account.PasswordHash = newHash
	r.accounts[email] = account
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, email, passwordHash string) error {
	account, ok := r.accounts[email]
	if !ok {
		return ErrNotFound
	}
	if account.PasswordHash != passwordHash {
		return ErrWrongPassword
	}
	delete(r.accounts, email)
	return nil
}

// fakeHasher keeps the digest reversible so tests stay fast and deterministic.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "digest:" + password, nil }
func (fakeHasher) Verify(password, digest string) bool  { return digest == "digest:"+password }

type fakeIssuer struct{}

func (fakeIssuer) Issue(email string) (string, error) { return "token-for-" + email, nil }

func newService(repo AccountRepository) AuthUseCase {
	return NewAuthService(repo, fakeHasher{}, fakeIssuer{})
}

const (
	testEmail    = "john@example.com"
	testPassword = "P@ssw0rdOK"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success then conflict", func(t *testing.T) {
		svc := newService(newFakeRepo())

		require.NoError(t, svc.Register(ctx, testEmail, testPassword))
		assert.ErrorIs(t, svc.Register(ctx, testEmail, testPassword), ErrAccountExists)
	})

	t.Run("rejects malformed input before storage", func(t *testing.T) {
		repo := newFakeRepo()
		repo.failWith = errors.New("storage must not be touched")
		svc := newService(repo)

		assert.ErrorIs(t, svc.Register(ctx, "john@example", testPassword), ErrInvalidEmail)
		assert.ErrorIs(t, svc.Register(ctx, testEmail, "PASSWORD"), ErrInvalidPassword)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := newFakeRepo()
	svc := newService(repo)
	require.NoError(t, svc.Register(ctx, testEmail, testPassword))

	t.Run("success", func(t *testing.T) {
		token, err := svc.Login(ctx, testEmail, testPassword)
		require.NoError(t, err)
		assert.Equal(t, "token-for-"+testEmail, token)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Login(ctx, "jane@example.com", testPassword)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, testEmail, "Wr0ng-pass")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.Login(ctx, "john@example", testPassword)
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	const newPassword = "N3w-P@ssword"

	setup := func(t *testing.T) (AuthUseCase, *fakeRepo) {
		repo := newFakeRepo()
		svc := newService(repo)
		require.NoError(t, svc.Register(ctx, testEmail, testPassword))
		return svc, repo
	}

	t.Run("success rotates the hash", func(t *testing.T) {
		svc, _ := setup(t)

		require.NoError(t, svc.ChangePassword(ctx, testEmail, testEmail, testPassword, newPassword))

		_, err := svc.Login(ctx, testEmail, testPassword)
		assert.ErrorIs(t, err, ErrWrongPassword)
		_, err = svc.Login(ctx, testEmail, newPassword)
		assert.NoError(t, err)
	})

	t.Run("subject mismatch", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.ChangePassword(ctx, "jane@example.com", testEmail, testPassword, newPassword)
		assert.ErrorIs(t, err, ErrSubjectMismatch)
	})

	t.Run("wrong current password", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.ChangePassword(ctx, testEmail, testEmail, "Wr0ng-pass", newPassword)
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("weak new password", func(t *testing.T) {
		svc, _ := setup(t)
		err := svc.ChangePassword(ctx, testEmail, testEmail, testPassword, "weak")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("absent account", func(t *testing.T) {
		svc := newService(newFakeRepo())
		err := svc.ChangePassword(ctx, testEmail, testEmail, testPassword, newPassword)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("concurrent rotation loses", func(t *testing.T) {
		svc, repo := setup(t)

		// Another request replaced the hash between our read and the update.
		account := repo.accounts[testEmail]
		account.PasswordHash = "digest:Other-P@ss1"
		repo.accounts[testEmail] = account

		err := svc.ChangePassword(ctx, testEmail, testEmail, testPassword, newPassword)
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	setup := func(t *testing.T) AuthUseCase {
		svc := newService(newFakeRepo())
		require.NoError(t, svc.Register(ctx, testEmail, testPassword))
		return svc
	}

	t.Run("success and idempotent repeat", func(t *testing.T) {
		svc := setup(t)

		require.NoError(t, svc.DeleteAccount(ctx, testEmail, testEmail, testPassword))
		// Already absent: still a success.
		assert.NoError(t, svc.DeleteAccount(ctx, testEmail, testEmail, testPassword))

		_, err := svc.Login(ctx, testEmail, testPassword)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("subject mismatch", func(t *testing.T) {
		svc := setup(t)
		err := svc.DeleteAccount(ctx, "jane@example.com", testEmail, testPassword)
		assert.ErrorIs(t, err, ErrSubjectMismatch)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := setup(t)
		err := svc.DeleteAccount(ctx, testEmail, testEmail, "Wr0ng-pass")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}
