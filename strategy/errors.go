package strategy

import "errors"

var (
	// ErrNilFilter indicates that a build request carried no eligibility filter.
	ErrNilFilter = errors.New("eligibility filter is required")

	// ErrNoRoles indicates that a build request listed no roles to fill.
	ErrNoRoles = errors.New("no roles to assign")
)
