package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestNewNop(t *testing.T) {
	hooks := NewNop()
	ctx := context.Background()

	require.NotNil(t, hooks.OnScheduleBuilt)
	require.NotNil(t, hooks.OnAssignmentOverridden)
	require.NotNil(t, hooks.OnError)

	require.NoError(t, hooks.OnScheduleBuilt(ctx, types.Schedule{}))
	require.NoError(t, hooks.OnAssignmentOverridden(ctx, "2024-06-06", types.RoleAudio, "", "p1"))
	require.NoError(t, hooks.OnError(ctx, errors.New("boom")))
}

func TestFill(t *testing.T) {
	called := false
	h := Fill(types.Hooks{
		OnError: func(context.Context, error) error {
			called = true
			return nil
		},
	})

	require.NotNil(t, h.OnScheduleBuilt)
	require.NotNil(t, h.OnAssignmentOverridden)
	require.NoError(t, h.OnError(context.Background(), errors.New("x")))
	require.True(t, called, "user callbacks are kept")
}
