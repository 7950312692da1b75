package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

const rosterYAML = `
profiles:
  - id: p1
    name: Ana
    age: 34
    roles: [Microphone, Audio]
  - id: p2
    name: Ben
    age: 16
    roles: [Video]
`

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFile_ListProfiles(t *testing.T) {
	t.Run("reads profiles in document order", func(t *testing.T) {
		src := NewFile(writeFile(t, rosterYAML))

		profiles, err := src.ListProfiles(context.Background())
		require.NoError(t, err)
		require.Equal(t, []types.Profile{
			{ID: "p1", Name: "Ana", Age: 34, Roles: []types.Role{types.RoleMicrophone, types.RoleAudio}},
			{ID: "p2", Name: "Ben", Age: 16, Roles: []types.Role{types.RoleVideo}},
		}, profiles)
	})

	t.Run("picks up edits", func(t *testing.T) {
		path := writeFile(t, rosterYAML)
		src := NewFile(path)

		require.NoError(t, os.WriteFile(path, []byte("profiles: []\n"), 0o600))
		profiles, err := src.ListProfiles(context.Background())
		require.NoError(t, err)
		require.NotNil(t, profiles)
		require.Empty(t, profiles)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewFile(filepath.Join(t.TempDir(), "nope.yaml")).ListProfiles(context.Background())
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewFile(writeFile(t, rosterYAML)).ListProfiles(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeYAML(t *testing.T) {
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := DecodeYAML([]byte("profiles: ["))
		require.Error(t, err)
		require.NotErrorIs(t, err, types.ErrInvalidProfile)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := DecodeYAML([]byte("profiles:\n  - id: p1\n    age: 30\n"))
		require.ErrorIs(t, err, types.ErrInvalidProfile)
		require.Contains(t, err.Error(), "name")
	})

	t.Run("negative age", func(t *testing.T) {
		_, err := DecodeYAML([]byte("profiles:\n  - id: p1\n    name: Ana\n    age: -1\n"))
		require.ErrorIs(t, err, types.ErrInvalidProfile)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := DecodeYAML([]byte("profiles:\n  - {id: p1, name: Ana}\n  - {id: p1, name: Bea}\n"))
		require.ErrorIs(t, err, types.ErrInvalidProfile)
		require.Contains(t, err.Error(), "duplicate")
	})
}
