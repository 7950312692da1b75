package roster

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/test/simulation/internal/config"
	"github.com/arloliu/rota/types"
)

func TestGenerate(t *testing.T) {
	cfg := config.RosterConfig{Size: 50, MinorRatio: 1, QualifyProbability: 0.01}
	profiles := Generate(cfg, types.DefaultRoles(), rand.New(rand.NewPCG(1, 2)))

	require.Len(t, profiles, 50)
	for _, p := range profiles {
		require.True(t, p.IsMinor(18), p.ID)
		require.NotEmpty(t, p.Roles, p.ID)
	}

	again := Generate(cfg, types.DefaultRoles(), rand.New(rand.NewPCG(1, 2)))
	require.Equal(t, profiles, again)
}
