package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestRotation_Build(t *testing.T) {
	t.Run("spreads duty evenly", func(t *testing.T) {
		profiles := []types.Profile{
			{ID: "a", Name: "A", Age: 30, Roles: []types.Role{types.RolePlatform}},
			{ID: "b", Name: "B", Age: 30, Roles: []types.Role{types.RolePlatform}},
			{ID: "c", Name: "C", Age: 30, Roles: []types.Role{types.RolePlatform}},
		}
		req := newRequest(profiles)
		req.Roles = []types.Role{types.RolePlatform}

		asg, err := NewRotation().Build(req)
		require.NoError(t, err)

		counts := map[string]int{}
		for _, roles := range asg {
			counts[roles[types.RolePlatform]]++
		}
		// June 2024 has nine meeting dates.
		require.Equal(t, map[string]int{"a": 3, "b": 3, "c": 3}, counts)

		first, _ := asg.Get("2024-06-01", types.RolePlatform)
		require.Equal(t, "a", first, "ties are broken by profile order")
	})

	t.Run("deterministic", func(t *testing.T) {
		profiles := []types.Profile{
			{ID: "a", Name: "A", Age: 30, Roles: types.DefaultRoles()},
			{ID: "b", Name: "B", Age: 12, Roles: types.DefaultRoles()},
			{ID: "c", Name: "C", Age: 13, Roles: types.DefaultRoles()},
		}
		a, err := NewRotation().Build(newRequest(profiles))
		require.NoError(t, err)
		b, err := NewRotation().Build(newRequest(profiles))
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("pinned slots count toward load", func(t *testing.T) {
		profiles := []types.Profile{
			{ID: "a", Name: "A", Age: 30, Roles: []types.Role{types.RolePlatform}},
			{ID: "b", Name: "B", Age: 30, Roles: []types.Role{types.RolePlatform}},
		}
		req := newRequest(profiles)
		req.Roles = []types.Role{types.RolePlatform}
		req.Pinned = types.NewAssignmentMap()
		req.Pinned.Set("2024-06-29", types.RolePlatform, "a")

		asg, err := NewRotation().Build(req)
		require.NoError(t, err)

		first, _ := asg.Get("2024-06-01", types.RolePlatform)
		require.Equal(t, "b", first)
	})
}
