package event

import (
	"log/slog"
)

// WorkerRestartedHandler counts supervisor restarts so a flapping worker
// shows up in the stats page instead of only in the logs.
type WorkerRestartedHandler struct {
	log   *slog.Logger
	count func()
}

func NewWorkerRestartedHandler(log *slog.Logger, count func()) *WorkerRestartedHandler {
	return &WorkerRestartedHandler{log: log, count: count}
}

func (h *WorkerRestartedHandler) Handle(e Event) {
	if e.Type != RestartedAfterPanicType {
		return
	}
	payload, ok := e.Payload.(WorkerRestartedAfterPanic)
	if !ok {
		return
	}
	h.log.Warn("worker restarted after panic", "name", payload.WorkerName)
	if h.count != nil {
		h.count()
	}
}
