package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func schedule() types.Schedule {
	month := types.Month{Year: 2024, Month: time.June}
	d1, d2 := month.Date(6), month.Date(8)
	asg := types.NewAssignmentMap()
	asg.Set(d1.Key(), types.RoleAudio, "a")
	asg.Set(d2.Key(), types.RoleAudio, "a")
	asg.Set(d2.Key(), types.RoleVideo, "b")

	return types.Schedule{
		Month: month,
		Roles: []types.Role{types.RoleAudio, types.RoleVideo},
		Dates: []types.Date{d1, d2},
		Profiles: []types.Profile{
			{ID: "a", Name: "A", Age: 30, Roles: []types.Role{types.RoleAudio}},
			{ID: "b", Name: "B", Age: 30, Roles: []types.Role{types.RoleVideo}},
			{ID: "c", Name: "C", Age: 30, Roles: []types.Role{types.RoleVideo}},
			{ID: "d", Name: "D", Age: 30, Roles: []types.Role{types.RolePlatform}},
		},
		Assignments: asg,
	}
}

func TestSpread(t *testing.T) {
	// a=2, b=1, c=0; d holds no scheduled role.
	require.Equal(t, 2, Spread(schedule()))
	require.Zero(t, Spread(types.Schedule{}))
}

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	hook := c.OnScheduleBuilt("greedy")
	require.NoError(t, hook(context.Background(), schedule()))
	c.Record("backtracking", schedule())
	c.Record("backtracking", schedule())

	sums := c.Summaries()
	require.Len(t, sums, 2)
	require.Equal(t, "backtracking", sums[0].Strategy)
	require.Equal(t, 2, sums[0].Schedules)
	require.Equal(t, 8, sums[0].Slots)
	require.Equal(t, 6, sums[0].Filled)
	require.InDelta(t, 0.75, sums[0].FillRate(), 1e-9)
	require.Equal(t, 2, sums[0].MaxSpread)
	require.InDelta(t, 2.0, sums[0].MeanSpread, 1e-9)

	require.InDelta(t, 0.75, testutil.ToFloat64(c.fillRatio.WithLabelValues("greedy")), 1e-9)
	require.Zero(t, Summary{}.FillRate())
}
