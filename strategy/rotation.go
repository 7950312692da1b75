package strategy

import (
	"github.com/arloliu/rota/types"
)

// Rotation assigns each slot to the eligible profile with the fewest duties so far.
type Rotation struct{}

var _ types.AssignmentStrategy = (*Rotation)(nil)

// NewRotation creates a new rotation strategy.
//
// The strategy spreads duty evenly across the month: for every slot it picks the
// eligible profile with the fewest assignments so far (pinned slots included),
// breaking ties by profile order. This provides predictable, repeatable schedules
// but no variety between builds.
//
// Returns:
//   - *Rotation: Initialized rotation strategy
//
// Example:
//
//	planner, err := rota.NewPlanner(&cfg, src, strategy.NewRotation())
func NewRotation() *Rotation {
	return &Rotation{}
}

// Build computes a default assignment map using fewest-assignments-first selection.
//
// Parameters:
//   - req: Build request
//
// Returns:
//   - types.AssignmentMap: New assignment map
//   - error: ErrNilFilter or ErrNoRoles for unusable requests
func (r *Rotation) Build(req types.BuildRequest) (types.AssignmentMap, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	asg := seedResult(req)

	load := make(map[string]int, len(req.Profiles))
	for _, roles := range asg {
		for _, id := range roles {
			load[id]++
		}
	}

	for _, date := range req.Dates {
		key := date.Key()
		for _, role := range req.Roles {
			if isPinned(req, key, role) {
				continue
			}
			candidates := req.Filter.Eligible(date, role, req.Profiles, asg)
			if len(candidates) == 0 {
				continue
			}

			best := candidates[0]
			for _, c := range candidates[1:] {
				if load[c.ID] < load[best.ID] {
					best = c
				}
			}
			asg.Set(key, role, best.ID)
			load[best.ID]++
		}
	}

	return asg, nil
}
