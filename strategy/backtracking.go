package strategy

import (
	"math/rand/v2"

	"github.com/arloliu/rota/types"
)

// DefaultMaxNodes bounds the search tree explored per meeting date.
const DefaultMaxNodes = 100_000

// Backtracking fills each date with the largest number of slots it can.
//
// All constraints (same-day exclusivity and pairing) are scoped to a single
// date, so dates are solved independently. Within a date the search tries every
// eligible candidate for each role, plus leaving the role empty, and keeps the
// first assignment with the most filled slots.
type Backtracking struct {
	maxNodes int
	seed     uint64
}

var _ types.AssignmentStrategy = (*Backtracking)(nil)

// BacktrackingOption configures a Backtracking strategy.
type BacktrackingOption func(*Backtracking)

// NewBacktracking creates a new backtracking strategy.
//
// Parameters:
//   - opts: Optional configuration (WithMaxNodes, WithShuffleSeed)
//
// Returns:
//   - *Backtracking: Initialized backtracking strategy
//
// Example:
//
//	s := strategy.NewBacktracking(strategy.WithMaxNodes(10_000))
func NewBacktracking(opts ...BacktrackingOption) *Backtracking {
	b := &Backtracking{
		maxNodes: DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// WithMaxNodes sets the per-date search budget.
//
// When the budget is exhausted the best assignment found so far is kept.
// Non-positive values are ignored.
func WithMaxNodes(n int) BacktrackingOption {
	return func(b *Backtracking) {
		if n > 0 {
			b.maxNodes = n
		}
	}
}

// WithShuffleSeed shuffles candidate order with the given seed, so that among
// equally good assignments a different one is chosen per seed.
//
// A zero seed keeps candidates in profile order.
func WithShuffleSeed(seed uint64) BacktrackingOption {
	return func(b *Backtracking) {
		b.seed = seed
	}
}

// Build computes an assignment map that maximizes filled slots per date.
//
// Parameters:
//   - req: Build request
//
// Returns:
//   - types.AssignmentMap: New assignment map
//   - error: ErrNilFilter or ErrNoRoles for unusable requests
func (b *Backtracking) Build(req types.BuildRequest) (types.AssignmentMap, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	seed := req.Seed
	if seed == 0 {
		seed = b.seed
	}
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, pcgStream))
	}

	asg := seedResult(req)
	for _, date := range req.Dates {
		s := &dateSearch{
			req:      req,
			date:     date,
			key:      date.Key(),
			asg:      asg,
			rng:      rng,
			budget:   b.maxNodes,
			best:     map[types.Role]string{},
			bestFill: -1,
		}
		for _, role := range req.Roles {
			if !isPinned(req, s.key, role) {
				s.open = append(s.open, role)
			}
		}
		s.search(0, 0)

		for role, id := range s.best {
			asg.Set(s.key, role, id)
		}
	}

	return asg, nil
}

// dateSearch is the depth-first search state for one date.
type dateSearch struct {
	req      types.BuildRequest
	date     types.Date
	key      string
	asg      types.AssignmentMap
	rng      *rand.Rand
	open     []types.Role
	budget   int
	current  []types.Role
	best     map[types.Role]string
	bestFill int
}

// search explores role open[idx] onward; filled counts slots set so far.
// It returns false once the search should stop.
func (s *dateSearch) search(idx, filled int) bool {
	if s.budget <= 0 {
		// Out of budget: the partial assignment on the stack still counts.
		s.record(filled)
		return false
	}
	s.budget--

	if idx == len(s.open) {
		s.record(filled)
		return s.bestFill < len(s.open)
	}

	// Even filling every remaining role cannot beat the best so far.
	if filled+len(s.open)-idx <= s.bestFill {
		return true
	}

	role := s.open[idx]
	candidates := s.req.Filter.Eligible(s.date, role, s.req.Profiles, s.asg)
	if s.rng != nil {
		s.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}

	for _, c := range candidates {
		s.asg.Set(s.key, role, c.ID)
		s.current = append(s.current, role)
		more := s.search(idx+1, filled+1)
		s.current = s.current[:len(s.current)-1]
		s.asg.Set(s.key, role, "")
		if !more {
			return false
		}
	}

	return s.search(idx+1, filled)
}

// record keeps the roles currently on the stack as the best assignment when
// they fill more slots than the previous best.
func (s *dateSearch) record(filled int) {
	if filled <= s.bestFill {
		return
	}
	s.bestFill = filled
	s.best = make(map[types.Role]string, len(s.current))
	for _, role := range s.current {
		id, _ := s.asg.Get(s.key, role)
		s.best[role] = id
	}
}
