package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/rota/internal/kvutil"
	"github.com/arloliu/rota/types"
)

// DefaultKVPrefix is the key prefix of profile entries in a KV bucket.
const DefaultKVPrefix = "profile."

// KV reads profiles from a NATS JetStream key-value bucket.
//
// Each profile is stored as a JSON document under "<prefix><id>". Keys without
// the prefix are ignored, so the bucket may be shared with published schedules.
type KV struct {
	kv     jetstream.KeyValue
	prefix string
}

var _ types.ProfileSource = (*KV)(nil)

// KVOption configures a KV source.
type KVOption func(*KV)

// WithKeyPrefix overrides the profile key prefix.
func WithKeyPrefix(prefix string) KVOption {
	return func(s *KV) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewKV creates a profile source over an open KV bucket.
//
// Example:
//
//	js, _ := jetstream.New(nc)
//	bucket, _ := js.KeyValue(ctx, "rota")
//	src := source.NewKV(bucket)
func NewKV(kv jetstream.KeyValue, opts ...KVOption) *KV {
	s := &KV{kv: kv, prefix: DefaultKVPrefix}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Key returns the bucket key for a profile ID.
func (s *KV) Key(id string) string {
	return s.prefix + id
}

// ListProfiles reads every profile entry in the bucket.
//
// Entries deleted between listing and reading are skipped.
//
// Returns:
//   - []types.Profile: Profiles sorted by name, then id
//   - error: NATS failure, or types.ErrInvalidProfile for undecodable or invalid entries
func (s *KV) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	keys, err := kvutil.KeysWithPrefix(ctx, s.kv, s.prefix)
	if err != nil {
		return nil, err
	}

	profiles := make([]types.Profile, 0, len(keys))
	for _, key := range keys {
		entry, err := s.kv.Get(ctx, key)
		if err != nil {
			if errors.Is(err, jetstream.ErrKeyNotFound) || errors.Is(err, jetstream.ErrKeyDeleted) {
				continue
			}

			return nil, fmt.Errorf("failed to get %s: %w", key, err)
		}

		var p types.Profile
		if err := json.Unmarshal(entry.Value(), &p); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", types.ErrInvalidProfile, key, err)
		}
		if p.ID == "" {
			p.ID = strings.TrimPrefix(key, s.prefix)
		}
		profiles = append(profiles, p)
	}

	if err := validateProfiles(profiles); err != nil {
		return nil, err
	}
	types.SortProfiles(profiles)

	return profiles, nil
}
