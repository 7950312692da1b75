package source

import (
	"context"
	"sync"

	"github.com/arloliu/rota/types"
)

// Static implements a profile source with a fixed list of profiles.
type Static struct {
	mu       sync.RWMutex
	profiles []types.Profile
}

var _ types.ProfileSource = (*Static)(nil)

// NewStatic creates a new static profile source.
//
// The source returns a fixed list of profiles in the given order.
// Useful for testing and small rosters known at startup.
//
// Parameters:
//   - profiles: Fixed list of profiles
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Profile{
//	    {ID: "p1", Name: "Ana", Age: 34, Roles: []types.Role{types.RoleAudio}},
//	})
//	planner, err := rota.NewPlanner(&cfg, src, strategy.NewGreedyRandom())
func NewStatic(profiles []types.Profile) *Static {
	return &Static{
		profiles: types.CloneProfiles(profiles),
	}
}

// ListProfiles returns a copy of the static list of profiles.
//
// Returns:
//   - []types.Profile: The profile list
//   - error: Always nil (never fails)
func (s *Static) ListProfiles(_ context.Context) ([]types.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return types.CloneProfiles(s.profiles), nil
}

// Update replaces the profile list.
//
// This allows the static source to simulate roster edits made elsewhere,
// which is useful for testing refresh and regeneration scenarios.
//
// Example:
//
//	src := source.NewStatic(initialProfiles)
//	// Later: a volunteer is removed
//	src.Update(remainingProfiles)
func (s *Static) Update(profiles []types.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles = types.CloneProfiles(profiles)
}
