package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string                  { return c.name }
func (c stubChecker) Check(_ context.Context) error { return c.err }

func TestReady(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no checkers", func(t *testing.T) {
		assert.NoError(t, NewService().Ready(ctx))
	})

	t.Run("all healthy", func(t *testing.T) {
		svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "cache"})
		assert.NoError(t, svc.Ready(ctx))
	})

	t.Run("failing checker is named", func(t *testing.T) {
		cause := errors.New("connection refused")
		svc := NewService(stubChecker{name: "postgres", err: cause})

		err := svc.Ready(ctx)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "postgres")
	})
}
