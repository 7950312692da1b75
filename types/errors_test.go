package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("wrapped errors keep identity", func(t *testing.T) {
		wrapped := fmt.Errorf("%w: %q", ErrInvalidMonthKey, "2024-13")
		require.ErrorIs(t, wrapped, ErrInvalidMonthKey)
		require.NotErrorIs(t, wrapped, ErrInvalidDateKey)

		joined := errors.Join(ErrProfileSourceFailed, errors.New("connection refused"))
		require.ErrorIs(t, joined, ErrProfileSourceFailed)
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidConfig,
			ErrProfileSourceRequired,
			ErrAssignmentStrategyRequired,
			ErrNoMonthSelected,
			ErrAssignmentFailed,
			ErrInvalidMonthKey,
			ErrInvalidDateKey,
			ErrProfileSourceFailed,
			ErrInvalidProfile,
			ErrPublisherRequired,
			ErrPublishFailed,
			ErrNoKeysFound,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.ErrorIs(t, err1, err2)
				} else {
					require.NotErrorIs(t, err1, err2, "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

func TestIsNoKeysFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "sentinel", err: ErrNoKeysFound, want: true},
		{name: "joined sentinel", err: errors.Join(ErrNoKeysFound, errors.New("ctx")), want: true},
		{name: "nats message", err: errors.New("nats: no keys found"), want: true},
		{name: "wrapped nats message", err: errors.New("failed to list KV keys: nats: no keys found"), want: true},
		{name: "unrelated", err: errors.New("some other error"), want: false},
		{name: "other sentinel", err: ErrInvalidConfig, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsNoKeysFoundError(tt.err))
		})
	}
}
