// Package eligibility decides who may fill a duty slot.
//
// A profile is eligible for (date, role) when it is qualified for the role,
// is not already assigned to another role on that date, and does not violate
// the pairing rule: two minors may never staff the paired roles (Audio and
// Video by default) on the same date.
//
// Eligibility is recomputed on every call against the current assignment map;
// nothing is cached.
package eligibility
