package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota/types"
)

func TestNewNop(t *testing.T) {
	metrics := NewNop()

	require.NotNil(t, metrics)
	require.IsType(t, &NopMetrics{}, metrics)
}

func TestNopMetrics_DiscardsEverything(t *testing.T) {
	metrics := NewNop()

	require.NotPanics(t, func() {
		metrics.RecordBuild("2024-06", 0.01, 30, 6)
		metrics.RecordBuild("", -1, -1, -1)
		metrics.RecordUnfilledSlot(types.RoleAudio)
		metrics.RecordOverride("")
		metrics.RecordEventDropped()
		metrics.RecordProfileRefresh(12, true)
		metrics.RecordProfileRefresh(0, false)
		metrics.RecordPublish(true, 0.002)
	})
}
