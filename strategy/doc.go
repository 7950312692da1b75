// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies decide who fills each (date, role) slot of a month.
// Every strategy consults the same types.EligibilityFilter, so qualification,
// same-day exclusivity and the pairing rule hold for all of them. Slots with no
// eligible candidate are left unset. The package includes three built-in strategies:
//
//   - GreedyRandom: Single-pass uniform random pick per slot (default)
//   - Rotation: Fewest-assignments-first, spreading duty evenly across the month
//   - Backtracking: Per-date search that maximizes the number of filled slots
//
// # Strategy Selection Guide
//
// GreedyRandom:
//   - Dates ascending, roles in declared order
//   - A fresh, seedable random source per build
//   - May leave a slot empty that a different earlier pick would have filled
//
// Rotation:
//   - Deterministic, no randomness
//   - Ties broken by profile order
//
// Backtracking:
//   - Same constraints as GreedyRandom, but never leaves a slot empty when some
//     assignment of that date could fill it
//   - Search is bounded by a node budget per date
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy
