// Package types provides core type definitions and interfaces for the rota library.
//
// This package contains shared types that are used across multiple packages in the
// rota library. By keeping these types in a separate package, we avoid import cycles
// between the main rota package and its strategy, eligibility, source and render packages.
//
// Key types:
//   - Profile: A volunteer and the set of roles they are qualified for
//   - Role: A duty role staffed once per meeting date
//   - Month, Date: Civil calendar values keyed as "YYYY-MM" and "YYYY-MM-DD"
//   - AssignmentMap: The mutable date -> role -> profile ID mapping
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
