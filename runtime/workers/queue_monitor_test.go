package workers

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueueMonitorWorker_ReportsOnlyChanges(t *testing.T) {
	req := require.New(t)
	length := 0
	var reports []bool

	w := NewQueueMonitorWorker(slog.Default(), []NamedQueue{
		{Name: "persistence", Backlog: func() (int, int) { return length, 10 }},
		{Name: "unbuffered", Backlog: func() (int, int) { return 0, 0 }},
	}, 0.8, time.Second, func(healthy bool) { reports = append(reports, healthy) })

	// Given a queue below the threshold, nothing is reported
	length = 3
	w.sample()
	req.Empty(reports)

	// When it fills past the threshold, then drains
	length = 8
	w.sample()
	w.sample()
	length = 1
	w.sample()

	// Then each transition is reported once
	req.Equal([]bool{false, true}, reports)
}
