package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

var june6 = types.Date{Year: 2024, Month: time.June, Day: 6}

func ids(profiles []types.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}

	return out
}

func TestFilter_Eligible(t *testing.T) {
	profiles := []types.Profile{
		{ID: "a", Name: "Ana", Age: 40, Roles: []types.Role{types.RoleAudio, types.RoleVideo}},
		{ID: "b", Name: "Bea", Age: 16, Roles: []types.Role{types.RoleAudio, types.RoleVideo}},
		{ID: "c", Name: "Caro", Age: 15, Roles: []types.Role{types.RoleVideo}},
		{ID: "d", Name: "Dani", Age: 50, Roles: []types.Role{types.RolePlatform}},
	}
	f := NewFilter(DefaultPairing())

	t.Run("qualification and order", func(t *testing.T) {
		got := f.Eligible(june6, types.RoleVideo, profiles, types.NewAssignmentMap())
		require.Equal(t, []string{"a", "b", "c"}, ids(got))
	})

	t.Run("excludes profiles already used on date", func(t *testing.T) {
		asg := types.NewAssignmentMap()
		asg.Set(june6.Key(), types.RolePlatform, "d")
		asg.Set(june6.Key(), types.RoleAudio, "a")

		got := f.Eligible(june6, types.RoleVideo, profiles, asg)
		require.Equal(t, []string{"b", "c"}, ids(got))
	})

	t.Run("used on another date does not matter", func(t *testing.T) {
		asg := types.NewAssignmentMap()
		asg.Set("2024-06-08", types.RoleAudio, "a")

		got := f.Eligible(june6, types.RoleAudio, profiles, asg)
		require.Equal(t, []string{"a", "b"}, ids(got))
	})

	t.Run("minor partner excludes minors", func(t *testing.T) {
		asg := types.NewAssignmentMap()
		asg.Set(june6.Key(), types.RoleAudio, "b")

		got := f.Eligible(june6, types.RoleVideo, profiles, asg)
		require.Equal(t, []string{"a"}, ids(got))
	})

	t.Run("unresolvable partner is treated as absent", func(t *testing.T) {
		asg := types.NewAssignmentMap()
		asg.Set(june6.Key(), types.RoleAudio, "deleted")

		got := f.Eligible(june6, types.RoleVideo, profiles, asg)
		require.Equal(t, []string{"a", "b", "c"}, ids(got))
	})

	t.Run("nobody eligible", func(t *testing.T) {
		got := f.Eligible(june6, types.RoleMicrophone, profiles, types.NewAssignmentMap())
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("idempotent and side-effect free", func(t *testing.T) {
		asg := types.NewAssignmentMap()
		asg.Set(june6.Key(), types.RoleAudio, "b")
		before := asg.Clone()

		first := f.Eligible(june6, types.RoleVideo, profiles, asg)
		second := f.Eligible(june6, types.RoleVideo, profiles, asg)
		require.Equal(t, first, second)
		require.Equal(t, before, asg)
	})
}

func TestFilter_TwoMinorsScenario(t *testing.T) {
	// Only two minors are qualified for Audio and Video.
	profiles := []types.Profile{
		{ID: "m1", Name: "Minor One", Age: 14, Roles: []types.Role{types.RoleAudio, types.RoleVideo}},
		{ID: "m2", Name: "Minor Two", Age: 15, Roles: []types.Role{types.RoleAudio, types.RoleVideo}},
	}
	f := NewFilter(DefaultPairing())
	asg := types.NewAssignmentMap()

	audio := f.Eligible(june6, types.RoleAudio, profiles, asg)
	require.Len(t, audio, 2)
	asg.Set(june6.Key(), types.RoleAudio, audio[0].ID)

	video := f.Eligible(june6, types.RoleVideo, profiles, asg)
	require.Empty(t, video, "the remaining minor must not be paired with the audio minor")
}
