package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestStatic_ListProfiles(t *testing.T) {
	t.Run("returns all profiles in order", func(t *testing.T) {
		profiles := []types.Profile{
			{ID: "b", Name: "Bea", Age: 20, Roles: []types.Role{types.RoleAudio}},
			{ID: "a", Name: "Ana", Age: 30, Roles: []types.Role{types.RoleVideo}},
		}
		src := NewStatic(profiles)

		result, err := src.ListProfiles(context.Background())

		require.NoError(t, err)
		require.Equal(t, profiles, result)
	})

	t.Run("returns empty list when no profiles", func(t *testing.T) {
		src := NewStatic([]types.Profile{})

		result, err := src.ListProfiles(context.Background())

		require.NoError(t, err)
		require.Empty(t, result)
	})

	t.Run("does not share memory with callers", func(t *testing.T) {
		profiles := []types.Profile{{ID: "a", Name: "Ana", Roles: []types.Role{types.RoleAudio}}}
		src := NewStatic(profiles)
		profiles[0].Name = "changed by caller"

		result, err := src.ListProfiles(context.Background())
		require.NoError(t, err)
		result[0].Roles[0] = types.RoleVideo

		again, _ := src.ListProfiles(context.Background())
		require.Equal(t, "Ana", again[0].Name)
		require.Equal(t, types.RoleAudio, again[0].Roles[0])
	})
}

func TestStatic_Update(t *testing.T) {
	src := NewStatic([]types.Profile{{ID: "a", Name: "Ana"}})
	src.Update([]types.Profile{{ID: "b", Name: "Bea"}, {ID: "c", Name: "Caro"}})

	result, err := src.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, "b", result[0].ID)
}
