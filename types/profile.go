package types

import (
	"cmp"
	"slices"
)

// DefaultAdultAge is the age from which a profile is no longer considered a minor.
const DefaultAdultAge = 18

// Role names a duty staffed once per meeting date (e.g., "Audio").
type Role string

// Default role set, in display order.
const (
	RoleMicrophone Role = "Microphone"
	RoleAudio      Role = "Audio"
	RoleVideo      Role = "Video"
	RolePlatform   Role = "Platform"
)

// DefaultRoles returns the default role set in display order.
//
// A fresh slice is returned on every call so callers may reorder it freely.
//
// Returns:
//   - []Role: Microphone, Audio, Video, Platform
func DefaultRoles() []Role {
	return []Role{RoleMicrophone, RoleAudio, RoleVideo, RolePlatform}
}

// Profile represents a volunteer that can be assigned to duty roles.
//
// Profiles are owned by an external profile repository; the assignment engine
// only reads them.
type Profile struct {
	// ID uniquely identifies the profile. It is the value stored in an AssignmentMap.
	ID string `json:"id" yaml:"id" validate:"required"`

	// Name is the display name shown in tables and selection lists.
	Name string `json:"name" yaml:"name" validate:"required"`

	// Age in whole years. Used by the pairing rule to detect minors.
	Age int `json:"age" yaml:"age" validate:"gte=0,lte=150"`

	// Roles lists the roles this profile is qualified for.
	Roles []Role `json:"roles" yaml:"roles" validate:"dive,required"`
}

// QualifiedFor reports whether the profile is qualified for the given role.
func (p Profile) QualifiedFor(role Role) bool {
	return slices.Contains(p.Roles, role)
}

// IsMinor reports whether the profile's age is below adultAge.
//
// Parameters:
//   - adultAge: Age threshold; values <= 0 fall back to DefaultAdultAge
//
// Returns:
//   - bool: true if Age < adultAge
func (p Profile) IsMinor(adultAge int) bool {
	if adultAge <= 0 {
		adultAge = DefaultAdultAge
	}

	return p.Age < adultAge
}

// FindProfile returns the profile with the given ID.
//
// Returns:
//   - Profile: The matching profile (zero value if not found)
//   - bool: true if a profile with the ID exists
func FindProfile(profiles []Profile, id string) (Profile, bool) {
	if id == "" {
		return Profile{}, false
	}
	idx := slices.IndexFunc(profiles, func(p Profile) bool { return p.ID == id })
	if idx < 0 {
		return Profile{}, false
	}

	return profiles[idx], true
}

// SortProfiles orders profiles by name, then by ID, in place.
//
// Sources without a natural order (KV buckets, maps) use this so that
// ListProfiles returns a stable sequence.
func SortProfiles(profiles []Profile) {
	slices.SortStableFunc(profiles, func(a, b Profile) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.ID, b.ID)
	})
}

// CloneProfiles returns a deep copy of profiles, including the role slices.
func CloneProfiles(profiles []Profile) []Profile {
	if profiles == nil {
		return nil
	}
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		p.Roles = slices.Clone(p.Roles)
		out[i] = p
	}

	return out
}
