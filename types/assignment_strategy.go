package types

// EligibilityFilter computes the candidates for a single slot.
//
// Implementations must be pure with respect to their arguments: the same
// inputs always yield the same candidates, in the order of profiles.
type EligibilityFilter interface {
	// Eligible returns the profiles that may fill (date, role) given the
	// assignments made so far.
	Eligible(date Date, role Role, profiles []Profile, asg AssignmentMap) []Profile
}

// BuildRequest carries everything a strategy needs to build a month's default assignment.
type BuildRequest struct {
	// Dates are the meeting dates in ascending order.
	Dates []Date

	// Roles are the roles to fill, in declared order.
	Roles []Role

	// Profiles is the current profile set.
	Profiles []Profile

	// Filter decides slot eligibility.
	Filter EligibilityFilter

	// Pinned holds slots that must be kept as-is. Strategies copy them into
	// the result and never reassign them. May be nil.
	Pinned AssignmentMap

	// Seed, when non-zero, makes randomized strategies deterministic for this build.
	Seed uint64
}

// AssignmentStrategy builds a default assignment map for a month.
//
// Strategies implement different assignment algorithms:
//   - GreedyRandom: single-pass uniform random pick per slot
//   - Rotation: fewest-assignments-first for even load
//   - Backtracking: per-date search that maximizes filled slots
//   - Custom: user-defined algorithms
//
// Strategy implementations should:
//   - Never assign one profile to two roles of the same date
//   - Only pick candidates returned by req.Filter
//   - Leave slots unset rather than fail when nobody is eligible
//   - Be free of side effects outside the returned map
type AssignmentStrategy interface {
	// Build computes a complete assignment map for the request.
	//
	// Parameters:
	//   - req: Dates, roles, profiles, filter and pinned slots
	//
	// Returns:
	//   - AssignmentMap: Fresh map (never aliases req.Pinned)
	//   - error: Build error (e.g., nil filter)
	Build(req BuildRequest) (AssignmentMap, error)
}
