package testing

import (
	"testing"

	"github.com/arloliu/rota/types"
)

// RequireNoDoubleBooking fails the test if any profile holds two roles on one date.
func RequireNoDoubleBooking(t *testing.T, asg types.AssignmentMap) {
	t.Helper()

	for dateKey, roles := range asg {
		seen := make(map[string]types.Role, len(roles))
		for role, id := range roles {
			if id == "" {
				continue
			}
			if prev, dup := seen[id]; dup {
				t.Fatalf("profile %q assigned to both %s and %s on %s", id, prev, role, dateKey)
			}
			seen[id] = role
		}
	}
}

// RequireNoMinorPairs fails the test if two minors staff the paired roles on one date.
//
// Assignees that no longer resolve to a profile are treated as absent.
func RequireNoMinorPairs(t *testing.T, asg types.AssignmentMap, profiles []types.Profile, pair [2]types.Role, adultAge int) {
	t.Helper()

	for dateKey := range asg {
		first, ok1 := resolve(asg, profiles, dateKey, pair[0])
		second, ok2 := resolve(asg, profiles, dateKey, pair[1])
		if !ok1 || !ok2 {
			continue
		}
		if first.IsMinor(adultAge) && second.IsMinor(adultAge) {
			t.Fatalf("minors %q (%s) and %q (%s) paired on %s", first.ID, pair[0], second.ID, pair[1], dateKey)
		}
	}
}

// RequireQualified fails the test if any assignee is not qualified for its role.
func RequireQualified(t *testing.T, asg types.AssignmentMap, profiles []types.Profile) {
	t.Helper()

	for dateKey, roles := range asg {
		for role, id := range roles {
			p, ok := types.FindProfile(profiles, id)
			if !ok {
				t.Fatalf("unknown profile %q assigned to %s on %s", id, role, dateKey)
			}
			if !p.QualifiedFor(role) {
				t.Fatalf("profile %q is not qualified for %s on %s", id, role, dateKey)
			}
		}
	}
}

func resolve(asg types.AssignmentMap, profiles []types.Profile, dateKey string, role types.Role) (types.Profile, bool) {
	id, ok := asg.Get(dateKey, role)
	if !ok {
		return types.Profile{}, false
	}

	return types.FindProfile(profiles, id)
}
