package event

import (
	"log/slog"
	"time"
)

// LatencyHandler measures the lead time between message receipt at the
// transport and its broadcast to subscribers.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	if e.Type != MessageDeliveredType {
		return
	}
	payload, ok := e.Payload.(MessageBroadcast)
	if !ok {
		return
	}
	leadTime := e.CreatedAt.Sub(payload.ReceivedAt)

	h.log.Debug("telemetry: broadcast latency",
		"room_id", payload.Room,
		"author", payload.Author,
		"lead_time_ms", leadTime.Milliseconds(),
	)

	if leadTime > h.latencyThreshold {
		h.log.Warn("high latency detected", "lead_time", leadTime)
	}
}
