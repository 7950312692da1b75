// Package source provides built-in profile source implementations.
//
// Profile sources supply the volunteer roster read by the planner on every
// month selection. The package includes:
//
//   - Static: Fixed in-memory list of profiles
//   - File: YAML document on disk, re-read on every call
//   - SQL: profiles table in SQLite (modernc.org/sqlite) or PostgreSQL (pgx)
//   - KV: NATS JetStream key-value bucket with one JSON entry per profile
//
// All sources are read-only and return copies the caller may keep.
// Custom sources can be implemented by satisfying the types.ProfileSource interface.
package source
