package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewPrometheus(reg, "")

	t.Run("lazy registration", func(t *testing.T) {
		families, err := reg.Gather()
		require.NoError(t, err)
		require.Empty(t, families)
	})

	t.Run("build gauges", func(t *testing.T) {
		c.RecordBuild("2024-06", 0.003, 30, 6)
		require.InDelta(t, 30, testutil.ToFloat64(c.slotsFilled.WithLabelValues("2024-06")), 0)
		require.InDelta(t, 6, testutil.ToFloat64(c.slotsUnfilled.WithLabelValues("2024-06")), 0)

		c.RecordBuild("2024-06", 0.002, 33, 3)
		require.InDelta(t, 3, testutil.ToFloat64(c.slotsUnfilled.WithLabelValues("2024-06")), 0)
	})

	t.Run("counters", func(t *testing.T) {
		c.RecordUnfilledSlot(types.RoleVideo)
		c.RecordUnfilledSlot(types.RoleVideo)
		c.RecordOverride(types.RoleAudio)
		c.RecordEventDropped()

		require.InDelta(t, 2, testutil.ToFloat64(c.unfilledByRole.WithLabelValues("Video")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(c.overrides.WithLabelValues("Audio")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(c.eventsDropped), 0)
	})

	t.Run("source and publish", func(t *testing.T) {
		c.RecordProfileRefresh(12, true)
		c.RecordProfileRefresh(0, false)
		c.RecordPublish(true, 0.004)
		c.RecordPublish(false, 0.5)

		require.InDelta(t, 12, testutil.ToFloat64(c.profilesCurrent), 0)
		require.InDelta(t, 1, testutil.ToFloat64(c.profileRefresh.WithLabelValues("failure")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(c.publishResults.WithLabelValues("success")), 0)
		require.Equal(t, 1, testutil.CollectAndCount(c.publishLatency))
	})

	t.Run("namespace", func(t *testing.T) {
		families, err := reg.Gather()
		require.NoError(t, err)
		require.NotEmpty(t, families)
		for _, mf := range families {
			require.Contains(t, mf.GetName(), "rota_")
		}
	})
}
