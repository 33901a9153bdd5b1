package workers

import (
	"code-racer/contract"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*StatsWorker)(nil)

// StatsWorker periodically logs the coordinator load: active rooms,
// seated participants and the memory/CPU footprint of the process.
type StatsWorker struct {
	log      *slog.Logger
	provider contract.IStatsProvider
	interval time.Duration
}

func NewStatsWorker(log *slog.Logger, provider contract.IStatsProvider, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log, provider: provider, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rooms, participants := w.provider.Stats()
			rss, cpu, err := getSelfStats(p)
			if err != nil {
				w.log.Debug("Failed to collect self stats", "err", err)
			}
			w.log.Info("Coordinator stats",
				"rooms", rooms,
				"participants", participants,
				"rss_bytes", rss,
				"cpu_percent", cpu)
		}
	}
}

// getSelfStats retrieves the resident memory and CPU usage of the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
