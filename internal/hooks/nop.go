// Package hooks provides default Hooks implementations.
package hooks

import (
	"context"

	"github.com/arloliu/rota/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Schedule) error                     = (*NopHooks)(nil).OnScheduleBuilt
	_ func(context.Context, string, types.Role, string, string) error = (*NopHooks)(nil).OnAssignmentOverridden
	_ func(context.Context, error) error                              = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnScheduleBuilt:        h.OnScheduleBuilt,
		OnAssignmentOverridden: h.OnAssignmentOverridden,
		OnError:                h.OnError,
	}
}

// Fill returns h with every nil callback replaced by its no-op counterpart.
func Fill(h types.Hooks) types.Hooks {
	nop := NewNop()
	if h.OnScheduleBuilt == nil {
		h.OnScheduleBuilt = nop.OnScheduleBuilt
	}
	if h.OnAssignmentOverridden == nil {
		h.OnAssignmentOverridden = nop.OnAssignmentOverridden
	}
	if h.OnError == nil {
		h.OnError = nop.OnError
	}

	return h
}

// OnScheduleBuilt is a no-op implementation.
func (h *NopHooks) OnScheduleBuilt(ctx context.Context, schedule types.Schedule) error {
	return nil
}

// OnAssignmentOverridden is a no-op implementation.
func (h *NopHooks) OnAssignmentOverridden(ctx context.Context, dateKey string, role types.Role, previous, profileID string) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
