package eligibility

import (
	"github.com/arloliu/rota/types"
)

// Filter computes eligible candidates for a slot.
//
// Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	pairing PairingRule
}

var _ types.EligibilityFilter = (*Filter)(nil)

// NewFilter creates a filter that enforces the given pairing rule.
//
// Example:
//
//	f := eligibility.NewFilter(eligibility.DefaultPairing())
//	candidates := f.Eligible(date, types.RoleAudio, profiles, asg)
func NewFilter(pairing PairingRule) *Filter {
	return &Filter{pairing: pairing}
}

// Pairing returns the pairing rule enforced by the filter.
func (f *Filter) Pairing() PairingRule {
	return f.pairing
}

// Eligible returns the profiles that may fill (date, role).
//
// A profile qualifies when all of the following hold:
//   - it lists role among its qualified roles
//   - it is not assigned to any role on date
//   - the pairing rule allows it next to the partner-role assignee
//
// The profile order is preserved. The result is empty (never nil) when nobody
// qualifies; callers then leave the slot unassigned. Neither profiles nor asg
// are modified.
//
// Parameters:
//   - date: Meeting date
//   - role: Role being filled
//   - profiles: Candidate pool
//   - asg: Assignments made so far
//
// Returns:
//   - []types.Profile: Eligible profiles in input order
func (f *Filter) Eligible(date types.Date, role types.Role, profiles []types.Profile, asg types.AssignmentMap) []types.Profile {
	dateKey := date.Key()
	partner := f.partnerProfile(dateKey, role, profiles, asg)

	out := make([]types.Profile, 0, len(profiles))
	for _, p := range profiles {
		if !p.QualifiedFor(role) {
			continue
		}
		if asg.IsUsed(dateKey, p.ID) {
			continue
		}
		if !f.pairing.Allowed(role, p, partner) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// partnerProfile resolves the assignee of role's partner on dateKey.
// Unassigned or unresolvable partners yield nil.
func (f *Filter) partnerProfile(dateKey string, role types.Role, profiles []types.Profile, asg types.AssignmentMap) *types.Profile {
	partnerRole, ok := f.pairing.Partner(role)
	if !ok {
		return nil
	}
	id, ok := asg.Get(dateKey, partnerRole)
	if !ok {
		return nil
	}
	p, ok := types.FindProfile(profiles, id)
	if !ok {
		return nil
	}

	return &p
}
