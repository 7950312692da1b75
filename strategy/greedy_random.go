package strategy

import (
	"math/rand/v2"

	"github.com/arloliu/rota/internal/logger"
	"github.com/arloliu/rota/types"
)

// pcgStream is the fixed PCG stream selector; only the seed varies between builds.
const pcgStream = 0x9e3779b97f4a7c15

// GreedyRandom implements single-pass greedy assignment with a uniform random pick.
type GreedyRandom struct {
	seed   uint64
	logger types.Logger
}

var _ types.AssignmentStrategy = (*GreedyRandom)(nil)

// GreedyRandomOption configures a GreedyRandom strategy.
type GreedyRandomOption func(*GreedyRandom)

// NewGreedyRandom creates a new greedy random strategy.
//
// Each Build walks dates in ascending order and roles in declared order, computes
// the eligible candidates against the map built so far, and picks one uniformly
// at random. Without a seed every build draws a fresh random seed, so repeated
// builds of the same month differ.
//
// Parameters:
//   - opts: Optional configuration (WithSeed, WithLogger)
//
// Returns:
//   - *GreedyRandom: Initialized greedy strategy
//
// Example:
//
//	s := strategy.NewGreedyRandom(strategy.WithSeed(42))
//	planner, err := rota.NewPlanner(&cfg, src, s)
func NewGreedyRandom(opts ...GreedyRandomOption) *GreedyRandom {
	g := &GreedyRandom{
		logger: logger.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithSeed fixes the random seed used when a request carries none.
//
// A zero seed keeps the default behavior of drawing a fresh seed per build.
func WithSeed(seed uint64) GreedyRandomOption {
	return func(g *GreedyRandom) {
		g.seed = seed
	}
}

// WithLogger sets the logger used to report unfilled slots.
func WithLogger(l types.Logger) GreedyRandomOption {
	return func(g *GreedyRandom) {
		if l != nil {
			g.logger = l
		}
	}
}

// Build computes a default assignment map.
//
// The algorithm:
//  1. Copy pinned slots into the result
//  2. For each date (ascending) and role (declared order) not pinned,
//     compute eligible candidates against the result so far
//  3. Pick one candidate uniformly at random, or leave the slot unset
//
// The build is single-pass and never revisits an earlier decision.
//
// Parameters:
//   - req: Build request
//
// Returns:
//   - types.AssignmentMap: New assignment map
//   - error: ErrNilFilter or ErrNoRoles for unusable requests
func (g *GreedyRandom) Build(req types.BuildRequest) (types.AssignmentMap, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	rng := g.newRand(req.Seed)
	asg := seedResult(req)

	for _, date := range req.Dates {
		key := date.Key()
		for _, role := range req.Roles {
			if isPinned(req, key, role) {
				continue
			}
			candidates := req.Filter.Eligible(date, role, req.Profiles, asg)
			if len(candidates) == 0 {
				g.logger.Debug("no eligible profile for slot", "date", key, "role", role)
				continue
			}
			pick := candidates[rng.IntN(len(candidates))]
			asg.Set(key, role, pick.ID)
		}
	}

	return asg, nil
}

func (g *GreedyRandom) newRand(reqSeed uint64) *rand.Rand {
	seed := reqSeed
	if seed == 0 {
		seed = g.seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, pcgStream))
}
