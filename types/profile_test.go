package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	p := Profile{ID: "p1", Name: "Ana", Age: 17, Roles: []Role{RoleAudio, RoleVideo}}

	t.Run("qualified for", func(t *testing.T) {
		require.True(t, p.QualifiedFor(RoleAudio))
		require.False(t, p.QualifiedFor(RolePlatform))
	})

	t.Run("is minor", func(t *testing.T) {
		require.True(t, p.IsMinor(18))
		require.True(t, p.IsMinor(0), "non-positive threshold falls back to default")
		require.False(t, p.IsMinor(16))
		require.False(t, Profile{Age: 18}.IsMinor(18))
	})
}

func TestFindProfile(t *testing.T) {
	profiles := []Profile{{ID: "a", Name: "Ana"}, {ID: "b", Name: "Bea"}}

	p, ok := FindProfile(profiles, "b")
	require.True(t, ok)
	require.Equal(t, "Bea", p.Name)

	_, ok = FindProfile(profiles, "missing")
	require.False(t, ok)

	_, ok = FindProfile(profiles, "")
	require.False(t, ok)
}

func TestSortAndCloneProfiles(t *testing.T) {
	profiles := []Profile{
		{ID: "3", Name: "Carla", Roles: []Role{RoleAudio}},
		{ID: "2", Name: "Ana"},
		{ID: "1", Name: "Ana"},
	}

	SortProfiles(profiles)
	require.Equal(t, []string{"1", "2", "3"}, []string{profiles[0].ID, profiles[1].ID, profiles[2].ID})

	clone := CloneProfiles(profiles)
	clone[2].Roles[0] = RoleVideo
	require.Equal(t, RoleAudio, profiles[2].Roles[0])
	require.Nil(t, CloneProfiles(nil))
}

func TestDefaultRoles(t *testing.T) {
	roles := DefaultRoles()
	require.Equal(t, []Role{RoleMicrophone, RoleAudio, RoleVideo, RolePlatform}, roles)

	roles[0] = "changed"
	require.Equal(t, RoleMicrophone, DefaultRoles()[0])
}
