package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/calendar"
	"github.com/arloliu/rota/eligibility"
	rotatest "github.com/arloliu/rota/testing"
	"github.com/arloliu/rota/types"
)

var june2024 = types.Month{Year: 2024, Month: time.June}

func newRequest(profiles []types.Profile) types.BuildRequest {
	return types.BuildRequest{
		Dates:    calendar.MeetingDates(june2024, calendar.DefaultWeekdays()...),
		Roles:    types.DefaultRoles(),
		Profiles: profiles,
		Filter:   eligibility.NewFilter(eligibility.DefaultPairing()),
	}
}

func allStrategies() map[string]types.AssignmentStrategy {
	return map[string]types.AssignmentStrategy{
		"GreedyRandom": NewGreedyRandom(),
		"Rotation":     NewRotation(),
		"Backtracking": NewBacktracking(),
	}
}

func requireInvariants(t *testing.T, asg types.AssignmentMap, profiles []types.Profile) {
	t.Helper()

	rotatest.RequireNoDoubleBooking(t, asg)
	rotatest.RequireNoMinorPairs(t, asg, profiles, [2]types.Role{types.RoleAudio, types.RoleVideo}, types.DefaultAdultAge)
	rotatest.RequireQualified(t, asg, profiles)
}

func TestStrategies_Invariants(t *testing.T) {
	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			profiles := rotatest.SampleProfiles()
			for range 50 {
				asg, err := s.Build(newRequest(profiles))
				require.NoError(t, err)
				requireInvariants(t, asg, profiles)
			}
		})
	}
}

func TestStrategies_RequestValidation(t *testing.T) {
	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			req := newRequest(rotatest.SampleProfiles())
			req.Filter = nil
			_, err := s.Build(req)
			require.ErrorIs(t, err, ErrNilFilter)

			req = newRequest(rotatest.SampleProfiles())
			req.Roles = nil
			_, err = s.Build(req)
			require.ErrorIs(t, err, ErrNoRoles)
		})
	}
}

func TestStrategies_EmptyInputs(t *testing.T) {
	for name, s := range allStrategies() {
		t.Run(name+"/no profiles", func(t *testing.T) {
			asg, err := s.Build(newRequest(nil))
			require.NoError(t, err)
			require.Zero(t, asg.Filled())
		})

		t.Run(name+"/no dates", func(t *testing.T) {
			req := newRequest(rotatest.SampleProfiles())
			req.Dates = nil
			asg, err := s.Build(req)
			require.NoError(t, err)
			require.Empty(t, asg)
		})
	}
}

func TestStrategies_PinnedSlotsKept(t *testing.T) {
	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			profiles := rotatest.SampleProfiles()
			req := newRequest(profiles)
			req.Pinned = types.NewAssignmentMap()
			req.Pinned.Set("2024-06-06", types.RoleAudio, "p-fer")
			req.Pinned.Set("2024-07-04", types.RoleAudio, "p-fer") // outside the month
			pinnedBefore := req.Pinned.Clone()

			asg, err := s.Build(req)
			require.NoError(t, err)

			id, ok := asg.Get("2024-06-06", types.RoleAudio)
			require.True(t, ok)
			require.Equal(t, "p-fer", id)
			require.NotContains(t, asg, "2024-07-04")
			require.Equal(t, pinnedBefore, req.Pinned, "pinned map must not be mutated")
			requireInvariants(t, asg, profiles)
		})
	}
}

func TestStrategies_TwoMinorsOnlyScenario(t *testing.T) {
	profiles := []types.Profile{
		{ID: "m1", Name: "Mia", Age: 14, Roles: []types.Role{types.RoleAudio, types.RoleVideo}},
		{ID: "m2", Name: "Max", Age: 15, Roles: []types.Role{types.RoleAudio, types.RoleVideo}},
	}

	for name, s := range allStrategies() {
		t.Run(name, func(t *testing.T) {
			req := newRequest(profiles)
			req.Roles = []types.Role{types.RoleAudio, types.RoleVideo}

			asg, err := s.Build(req)
			require.NoError(t, err)

			for _, d := range req.Dates {
				_, audio := asg.Get(d.Key(), types.RoleAudio)
				_, video := asg.Get(d.Key(), types.RoleVideo)
				require.True(t, audio, "audio should be filled on %s", d)
				require.False(t, video, "video must stay unassigned on %s", d)
			}
		})
	}
}
