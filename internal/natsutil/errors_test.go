package natsutil

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
)

func TestIsConnectivityError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout", nats.ErrTimeout, true},
		{"wrapped no servers", fmt.Errorf("list profiles: %w", nats.ErrNoServers), true},
		{"connection closed", nats.ErrConnectionClosed, true},
		{"deadline", context.DeadlineExceeded, true},
		{"refused message", errors.New("dial tcp: connection refused"), true},
		{"disconnected", nats.ErrDisconnected, true},
		{"stream no response", fmt.Errorf("publish: %w", jetstream.ErrNoStreamResponse), true},
		{"read timeout message", errors.New("read tcp 127.0.0.1:4222: i/o timeout"), true},
		{"data error", errors.New("invalid character 'x'"), false},
		{"revision conflict", jetstream.ErrKeyExists, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsConnectivityError(tt.err))
		})
	}
}
