package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"teamboard/observability"

	"github.com/shirou/gopsutil/process"
)

// HealthWorker samples the server's own process metrics (CPU, RSS, OS status)
// on a fixed interval and publishes them to the stats manager.
type HealthWorker struct {
	log            *slog.Logger
	stats          *observability.ChatStats
	metricInterval time.Duration
}

func NewHealthWorker(log *slog.Logger, stats *observability.ChatStats,
	metricInterval time.Duration) *HealthWorker {
	return &HealthWorker{log: log, stats: stats, metricInterval: metricInterval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, status, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.stats.SetProcessStats(cpu, rss, status)
		}
	}
}

// selfStats retrieves memory, CPU, and OS status for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
