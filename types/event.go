package types

// EventKind identifies what changed in a Planner.
type EventKind int

const (
	// EventRebuilt is emitted when a month's assignment map was rebuilt wholesale.
	EventRebuilt EventKind = iota

	// EventOverridden is emitted after a manual override of a single slot.
	EventOverridden
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventRebuilt:
		return "rebuilt"
	case EventOverridden:
		return "overridden"
	default:
		return "unknown"
	}
}

// Event describes a change to a Planner's assignment map.
//
// DateKey, Role and ProfileID are only set for EventOverridden.
type Event struct {
	Kind      EventKind
	Month     Month
	DateKey   string
	Role      Role
	ProfileID string
}
