package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/rota/internal/validation"
	"github.com/arloliu/rota/types"
)

// profileDocument is the on-disk layout read by File.
type profileDocument struct {
	Profiles []types.Profile `yaml:"profiles" validate:"dive"`
}

// File reads profiles from a YAML document on every call.
//
// The document has a single top-level key:
//
//	profiles:
//	  - id: p1
//	    name: Ana
//	    age: 34
//	    roles: [Microphone, Audio]
//
// Edits to the file become visible on the next ListProfiles call.
type File struct {
	path string
}

var _ types.ProfileSource = (*File)(nil)

// NewFile creates a profile source backed by the YAML file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// ListProfiles reads, decodes and validates the profile file.
//
// Returns:
//   - []types.Profile: Profiles in document order
//   - error: Read or decode failure, or types.ErrInvalidProfile wrapping field errors
func (f *File) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	return DecodeYAML(data)
}

// DecodeYAML decodes and validates a YAML profile document.
//
// Duplicate profile IDs are rejected.
//
// Parameters:
//   - data: YAML document bytes
//
// Returns:
//   - []types.Profile: Decoded profiles in document order
//   - error: Decode failure or types.ErrInvalidProfile
func DecodeYAML(data []byte) ([]types.Profile, error) {
	var doc profileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode profile file: %w", err)
	}
	if err := validateProfiles(doc.Profiles); err != nil {
		return nil, err
	}
	if doc.Profiles == nil {
		doc.Profiles = []types.Profile{}
	}

	return doc.Profiles, nil
}

// validateProfiles checks field constraints and ID uniqueness.
func validateProfiles(profiles []types.Profile) error {
	seen := make(map[string]struct{}, len(profiles))
	for i := range profiles {
		if err := validation.Default().Struct(profiles[i]); err != nil {
			return fmt.Errorf("%w: profile %d: %w", types.ErrInvalidProfile, i, err)
		}
		if _, dup := seen[profiles[i].ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", types.ErrInvalidProfile, profiles[i].ID)
		}
		seen[profiles[i].ID] = struct{}{}
	}

	return nil
}
