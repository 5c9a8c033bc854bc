// Package observability aggregates runtime metrics for the debug surface.
// Counters are atomic so workers never block on instrumentation.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot aggregates the metrics shown on the inspect page.
type Snapshot struct {
	MessagesPosted    uint64  `json:"messages_posted"`
	MessagesDelivered uint64  `json:"messages_delivered"`
	MessagesDropped   uint64  `json:"messages_dropped"`
	DeliveryPerSec    float64 `json:"delivery_per_sec"`
	ActiveConnections int64   `json:"active_connections"`
	WorkerRestarts    uint64  `json:"worker_restarts"`

	// Process-level metrics, fed by the health worker.
	ProcessCPUPercent float64 `json:"process_cpu_percent"`
	ProcessRSSMb      uint64  `json:"process_rss_mb"`
	ProcessStatus     string  `json:"process_status"`
	AllocMemMb        uint64  `json:"alloc_mem_mb"`
	NumGC             uint32  `json:"num_gc"`
}

// ChatStats tracks fan-out traffic in real time.
type ChatStats struct {
	log    *slog.Logger
	mu     sync.RWMutex
	latest Snapshot

	// Atomic counters, folded into the snapshot once per tick.
	posted      uint64
	delivered   uint64
	dropped     uint64
	restarts    uint64
	connections int64

	deliveredLastTick uint64
	lastCheck         time.Time
}

func NewChatStats(log *slog.Logger) *ChatStats {
	return &ChatStats{log: log, lastCheck: time.Now()}
}

func (s *ChatStats) IncrPosted()          { atomic.AddUint64(&s.posted, 1) }
func (s *ChatStats) IncrDelivered(n int)  { atomic.AddUint64(&s.delivered, uint64(n)) }
func (s *ChatStats) IncrDropped()         { atomic.AddUint64(&s.dropped, 1) }
func (s *ChatStats) IncrWorkerRestarts()  { atomic.AddUint64(&s.restarts, 1) }
func (s *ChatStats) ConnectionOpened()    { atomic.AddInt64(&s.connections, 1) }
func (s *ChatStats) ConnectionClosed()    { atomic.AddInt64(&s.connections, -1) }

// SetProcessStats records the latest self-inspection sample.
func (s *ChatStats) SetProcessStats(cpuPercent float64, rssBytes uint64, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest.ProcessCPUPercent = cpuPercent
	s.latest.ProcessRSSMb = rssBytes / 1024 / 1024
	s.latest.ProcessStatus = status
}

// Listen refreshes the snapshot once per second until the context ends.
func (s *ChatStats) Listen(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("stats collector stopped")
			return
		case <-ticker.C:
			s.updateSnapshot()
		}
	}
}

func (s *ChatStats) updateSnapshot() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	duration := now.Sub(s.lastCheck).Seconds()
	delivered := atomic.LoadUint64(&s.delivered)
	if duration > 0 {
		s.latest.DeliveryPerSec = float64(delivered-s.deliveredLastTick) / duration
	}
	s.deliveredLastTick = delivered
	s.lastCheck = now

	s.latest.MessagesPosted = atomic.LoadUint64(&s.posted)
	s.latest.MessagesDelivered = delivered
	s.latest.MessagesDropped = atomic.LoadUint64(&s.dropped)
	s.latest.WorkerRestarts = atomic.LoadUint64(&s.restarts)
	s.latest.ActiveConnections = atomic.LoadInt64(&s.connections)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.latest.AllocMemMb = m.Alloc / 1024 / 1024
	s.latest.NumGC = m.NumGC
}

func (s *ChatStats) GetLatest() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// AsMap adapts the snapshot for the debug page stats provider.
func (s *ChatStats) AsMap() map[string]any {
	snap := s.GetLatest()
	return map[string]any{
		"Messages posted":    snap.MessagesPosted,
		"Messages delivered": snap.MessagesDelivered,
		"Messages dropped":   snap.MessagesDropped,
		"Delivery rate":      fmt.Sprintf("%.1f/s", snap.DeliveryPerSec),
		"Active connections": snap.ActiveConnections,
		"Worker restarts":    snap.WorkerRestarts,
		"Process CPU":        fmt.Sprintf("%.1f%%", snap.ProcessCPUPercent),
		"Process RSS (MB)":   snap.ProcessRSSMb,
		"Heap alloc (MB)":    snap.AllocMemMb,
		"GC cycles":          snap.NumGC,
	}
}
