package eligibility

import "github.com/arloliu/rota/types"

// PairingRule forbids two minors from jointly staffing a pair of roles on one date.
type PairingRule struct {
	// Roles is the constrained pair. Each role's partner is the other one.
	Roles [2]types.Role `yaml:"roles" json:"roles"`

	// AdultAge is the threshold below which a profile is a minor.
	// Values <= 0 fall back to types.DefaultAdultAge.
	AdultAge int `yaml:"adult_age" json:"adult_age"`
}

// DefaultPairing returns the Audio/Video pairing with an adult age of 18.
func DefaultPairing() PairingRule {
	return PairingRule{
		Roles:    [2]types.Role{types.RoleAudio, types.RoleVideo},
		AdultAge: types.DefaultAdultAge,
	}
}

// Partner returns the role paired with role.
//
// Returns:
//   - types.Role: The partner role ("" if role is not in the pair)
//   - bool: true if role belongs to the pair
func (r PairingRule) Partner(role types.Role) (types.Role, bool) {
	switch role {
	case r.Roles[0]:
		return r.Roles[1], true
	case r.Roles[1]:
		return r.Roles[0], true
	default:
		return "", false
	}
}

// Allowed reports whether candidate may take role given the partner-role assignee.
//
// Roles outside the pair are always allowed. A nil other means nobody holds the
// partner role, or the assignee no longer resolves to a profile, and is also
// allowed. Otherwise the candidate is rejected exactly when both are minors.
//
// Parameters:
//   - role: Role being filled
//   - candidate: Candidate profile
//   - other: Profile currently holding the partner role, or nil
//
// Returns:
//   - bool: true if the assignment respects the pairing rule
func (r PairingRule) Allowed(role types.Role, candidate types.Profile, other *types.Profile) bool {
	if _, paired := r.Partner(role); !paired {
		return true
	}
	if other == nil {
		return true
	}

	return !(candidate.IsMinor(r.AdultAge) && other.IsMinor(r.AdultAge))
}
