// Package roster generates random volunteer rosters for simulations.
package roster

import (
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/rota/test/simulation/internal/config"
	"github.com/arloliu/rota/types"
)

// Generate builds a roster of cfg.Size volunteers.
//
// Every volunteer holds at least one role. Minors are aged 12-17, adults 18-70.
//
// Parameters:
//   - cfg: Roster shape
//   - roles: Role set to draw qualifications from
//   - rng: Random source
//
// Returns:
//   - []types.Profile: Generated roster with ids "v-000", "v-001", ...
func Generate(cfg config.RosterConfig, roles []types.Role, rng *rand.Rand) []types.Profile {
	profiles := make([]types.Profile, 0, cfg.Size)
	for i := range cfg.Size {
		age := 18 + rng.IntN(53)
		if rng.Float64() < cfg.MinorRatio {
			age = 12 + rng.IntN(6)
		}

		qualified := make([]types.Role, 0, len(roles))
		for _, r := range roles {
			if rng.Float64() < cfg.QualifyProbability {
				qualified = append(qualified, r)
			}
		}
		if len(qualified) == 0 && len(roles) > 0 {
			qualified = append(qualified, roles[rng.IntN(len(roles))])
		}

		profiles = append(profiles, types.Profile{
			ID:    fmt.Sprintf("v-%03d", i),
			Name:  fmt.Sprintf("Volunteer %d", i),
			Age:   age,
			Roles: qualified,
		})
	}

	return profiles
}
