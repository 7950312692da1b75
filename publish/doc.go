// Package publish stores schedule snapshots in a NATS JetStream key-value bucket.
//
// Each month is kept under a single key ("schedule.YYYY-MM" by default). Every
// publish bumps the month's version, using optimistic concurrency on the KV
// revision, so readers can tell a re-generated or edited schedule from the
// one they already hold. The bucket keeps a short history of prior versions.
package publish
