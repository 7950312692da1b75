package types

import (
	"maps"
	"slices"
	"time"
)

// DefaultUnassignedLabel is shown for slots without a resolvable assignee.
const DefaultUnassignedLabel = "unassigned"

// AssignmentMap records committed slot decisions: date key -> role -> profile ID.
//
// The outer key is the ISO "YYYY-MM-DD" date key. For a given date each role maps
// to at most one profile ID. Strategies never assign the same profile ID to two
// roles of one date, but manual overrides written through Set are not validated
// and may break that property on purpose.
//
// AssignmentMap is not safe for concurrent use; the owning Planner serializes access.
type AssignmentMap map[string]map[Role]string

// NewAssignmentMap creates an empty assignment map.
func NewAssignmentMap() AssignmentMap {
	return make(AssignmentMap)
}

// Get returns the profile ID assigned to (dateKey, role).
//
// Returns:
//   - string: Assigned profile ID ("" if unset)
//   - bool: true if the slot has an assignee
func (m AssignmentMap) Get(dateKey string, role Role) (string, bool) {
	id, ok := m[dateKey][role]
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// Set unconditionally overwrites the (dateKey, role) entry, creating the date's
// sub-map if absent.
//
// No qualification, same-day or pairing validation is performed. An empty
// profileID clears the slot.
//
// Parameters:
//   - dateKey: ISO date key ("YYYY-MM-DD")
//   - role: Role to assign
//   - profileID: Profile ID to store ("" clears the slot)
//
// Returns:
//   - string: The previous assignee ("" if the slot was unset)
func (m AssignmentMap) Set(dateKey string, role Role, profileID string) string {
	prev := m[dateKey][role]
	if profileID == "" {
		if roles, ok := m[dateKey]; ok {
			delete(roles, role)
		}

		return prev
	}

	roles, ok := m[dateKey]
	if !ok {
		roles = make(map[Role]string)
		m[dateKey] = roles
	}
	roles[role] = profileID

	return prev
}

// IsUsed reports whether profileID is assigned to any role on dateKey.
func (m AssignmentMap) IsUsed(dateKey, profileID string) bool {
	for _, id := range m[dateKey] {
		if id == profileID {
			return true
		}
	}

	return false
}

// Filled returns the number of assigned slots across all dates.
func (m AssignmentMap) Filled() int {
	n := 0
	for _, roles := range m {
		for _, id := range roles {
			if id != "" {
				n++
			}
		}
	}

	return n
}

// DateKeys returns the date keys present in the map in ascending order.
func (m AssignmentMap) DateKeys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Clone returns a deep copy of the map.
//
// The clone shares no sub-maps with m, so mutating one never affects the other.
func (m AssignmentMap) Clone() AssignmentMap {
	if m == nil {
		return nil
	}
	out := make(AssignmentMap, len(m))
	for dateKey, roles := range m {
		out[dateKey] = maps.Clone(roles)
	}

	return out
}

// ResolveAssignedName looks up the display name assigned to (dateKey, role).
//
// Unset slots and IDs that no longer resolve to a profile both yield the
// unassigned label. The map is never mutated.
//
// Parameters:
//   - m: Assignment map to read
//   - profiles: Current profile set
//   - dateKey: ISO date key
//   - role: Role to look up
//   - unassigned: Sentinel label ("" falls back to DefaultUnassignedLabel)
//
// Returns:
//   - string: Profile display name or the sentinel label
func ResolveAssignedName(m AssignmentMap, profiles []Profile, dateKey string, role Role, unassigned string) string {
	if unassigned == "" {
		unassigned = DefaultUnassignedLabel
	}
	id, ok := m.Get(dateKey, role)
	if !ok {
		return unassigned
	}
	p, ok := FindProfile(profiles, id)
	if !ok {
		return unassigned
	}

	return p.Name
}

// Schedule is an immutable snapshot of a month's assignments, suitable for
// rendering and publishing.
type Schedule struct {
	// Version is a monotonically increasing publish version per month (0 until published).
	Version int64 `json:"version"`

	// Month is the scheduled month.
	Month Month `json:"month"`

	// Roles lists the roles in display order.
	Roles []Role `json:"roles"`

	// Dates lists the meeting dates in ascending order.
	Dates []Date `json:"dates"`

	// Assignments is a deep copy of the planner's assignment map.
	Assignments AssignmentMap `json:"assignments"`

	// Profiles is the profile set the assignments were resolved against.
	Profiles []Profile `json:"profiles"`

	// GeneratedAt is when the snapshot was taken (UTC).
	GeneratedAt time.Time `json:"generated_at"`
}

// AssignedName resolves the display name for (dateKey, role) within the snapshot.
func (s Schedule) AssignedName(dateKey string, role Role, unassigned string) string {
	return ResolveAssignedName(s.Assignments, s.Profiles, dateKey, role, unassigned)
}

// Unfilled returns the number of (date, role) slots without a resolvable assignee.
func (s Schedule) Unfilled() int {
	n := 0
	for _, d := range s.Dates {
		for _, r := range s.Roles {
			id, ok := s.Assignments.Get(d.Key(), r)
			if !ok {
				n++
				continue
			}
			if _, found := FindProfile(s.Profiles, id); !found {
				n++
			}
		}
	}

	return n
}
