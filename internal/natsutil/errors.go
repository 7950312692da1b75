// Package natsutil classifies NATS client errors.
package natsutil

import (
	"context"
	"errors"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// unreachable lists the sentinels reported when the server cannot be reached.
var unreachable = []error{
	nats.ErrTimeout,
	nats.ErrNoServers,
	nats.ErrDisconnected,
	nats.ErrConnectionClosed,
	jetstream.ErrNoStreamResponse,
	context.DeadlineExceeded,
}

// transportFragments match dial and read failures that reach us unwrapped.
var transportFragments = []string{
	"connection refused",
	"i/o timeout",
}

// IsConnectivityError reports whether err means NATS was unreachable rather
// than that a schedule or profile was bad. Publish failures of this kind are
// logged at warn level.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range unreachable {
		if errors.Is(err, target) {
			return true
		}
	}

	msg := err.Error()
	for _, fragment := range transportFragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}

	return false
}
