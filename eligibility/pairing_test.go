package eligibility

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestPairingRule_Partner(t *testing.T) {
	rule := DefaultPairing()

	partner, ok := rule.Partner(types.RoleAudio)
	require.True(t, ok)
	require.Equal(t, types.RoleVideo, partner)

	partner, ok = rule.Partner(types.RoleVideo)
	require.True(t, ok)
	require.Equal(t, types.RoleAudio, partner)

	_, ok = rule.Partner(types.RolePlatform)
	require.False(t, ok)
}

func TestPairingRule_Allowed(t *testing.T) {
	rule := DefaultPairing()
	minor := types.Profile{ID: "m", Age: 15}
	otherMinor := types.Profile{ID: "m2", Age: 17}
	adult := types.Profile{ID: "a", Age: 30}

	tests := []struct {
		name      string
		role      types.Role
		candidate types.Profile
		other     *types.Profile
		want      bool
	}{
		{"role outside pair", types.RolePlatform, minor, &otherMinor, true},
		{"no partner assignee", types.RoleAudio, minor, nil, true},
		{"two minors", types.RoleAudio, minor, &otherMinor, false},
		{"two minors reversed", types.RoleVideo, otherMinor, &minor, false},
		{"minor with adult", types.RoleVideo, minor, &adult, true},
		{"adult with minor", types.RoleAudio, adult, &minor, true},
		{"exactly adult age", types.RoleAudio, types.Profile{Age: 18}, &minor, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, rule.Allowed(tt.role, tt.candidate, tt.other))
		})
	}

	t.Run("custom adult age", func(t *testing.T) {
		custom := PairingRule{Roles: [2]types.Role{types.RoleAudio, types.RoleVideo}, AdultAge: 16}
		require.True(t, custom.Allowed(types.RoleAudio, otherMinor, &minor))
	})
}
