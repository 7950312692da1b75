// Package testing provides test utilities for the rota library.
//
// This package offers helpers for setting up test environments, particularly
// embedded NATS servers for the KV source and publisher, plus invariant checks
// for built assignment maps. It follows Go's convention of providing testing
// utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single NATS server with JetStream
//   - CreateJetStreamKV: Convenience wrapper for KV bucket creation
//   - RequireNoDoubleBooking, RequireNoMinorPairs, RequireQualified: Assignment invariants
//   - SampleProfiles: A small mixed-age roster covering every default role
//
// Example usage:
//
//	import (
//	    "testing"
//	    rotatest "github.com/arloliu/rota/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := rotatest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
