// Package observability reports broker and process health through the
// structured log at a fixed interval.
package observability

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

type BrokerCounters interface {
	Counters() (delivered, persisted uint64)
}

type RegistryStats interface {
	Stats() (sessions, connected, attached int)
}

// Reporter is a supervised worker logging a stats line every interval:
// registry sizes, fan-out counters and the process's own RSS/CPU.
type Reporter struct {
	log      *slog.Logger
	interval time.Duration
	broker   BrokerCounters
	registry RegistryStats
}

func NewReporter(log *slog.Logger, interval time.Duration,
	broker BrokerCounters, registry RegistryStats) *Reporter {
	return &Reporter{
		log:      log,
		interval: interval,
		broker:   broker,
		registry: registry,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rss, cpu, err := selfStats(p)
			if err != nil {
				r.log.Debug("failed to collect self stats", "error", err)
				continue
			}
			sessions, connected, attached := r.registry.Stats()
			delivered, persisted := r.broker.Counters()
			r.log.Info("broker stats",
				"sessions", sessions,
				"connected", connected,
				"streams", attached,
				"delivered_live", delivered,
				"persisted", persisted,
				"rss_bytes", rss,
				"cpu_percent", cpu,
			)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
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
