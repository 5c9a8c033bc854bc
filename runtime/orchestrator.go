package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"teamboard/contract"
	"teamboard/domain"
	"teamboard/domain/event"
	"teamboard/moderation"
	"teamboard/observability"
	"teamboard/runtime/workers"
)

//go:embed censored/*
var censoredFolder embed.FS

var _ contract.IRoomStore = (*Orchestrator)(nil)

// Orchestrator owns the process-wide chat state: the room logs, the
// subscriber registry, and the worker pipeline moving a submission from
// moderation through the dispatch point to fan-out. Constructed once per
// process and passed by reference to every handler; tests build fresh
// instances for isolation.
type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	rooms          map[domain.RoomID]*domain.Room
	permanentSinks []contract.EventSink
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	stats          *observability.ChatStats

	commands        chan domain.Command
	sanitizedEvents chan event.DomainEvent
	broadcastEvents chan event.DomainEvent
	telemetryEvents chan event.Event

	sinkTimeout          time.Duration
	metricInterval       time.Duration
	latencyThreshold     time.Duration
	lowCapacityThreshold int
	charReplacement      rune
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor,
	registry *Registry, telemetryEvents chan event.Event,
	stats *observability.ChatStats, bufferSize int,
	sinkTimeout, metricInterval, latencyThreshold time.Duration,
	lowCapacityThreshold int, charReplacement rune) *Orchestrator {
	return &Orchestrator{
		log:                  log,
		rooms:                make(map[domain.RoomID]*domain.Room),
		supervisor:           supervisor,
		registry:             registry,
		stats:                stats,
		commands:             make(chan domain.Command, bufferSize),
		sanitizedEvents:      make(chan event.DomainEvent, bufferSize),
		broadcastEvents:      make(chan event.DomainEvent, bufferSize),
		telemetryEvents:      telemetryEvents,
		sinkTimeout:          sinkTimeout,
		metricInterval:       metricInterval,
		latencyThreshold:     latencyThreshold,
		lowCapacityThreshold: lowCapacityThreshold,
		charReplacement:      charReplacement,
	}
}

// Add registers permanent sinks consulted on every broadcast, regardless of
// room membership (history index, projections).
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Room returns the message log for the given id, creating it on first use.
func (o *Orchestrator) Room(id domain.RoomID) *domain.Room {
	o.mu.Lock()
	defer o.mu.Unlock()
	room, ok := o.rooms[id]
	if !ok {
		room = domain.NewRoom(id)
		o.rooms[id] = room
	}
	return room
}

// History returns the ordered log of a room. An unknown room yields an empty
// sequence, not an error, and is not created as a side effect.
func (o *Orchestrator) History(id domain.RoomID) []domain.Message {
	o.mu.Lock()
	room, ok := o.rooms[id]
	o.mu.Unlock()
	if !ok {
		return []domain.Message{}
	}
	return room.Messages()
}

// PostMessage queues a submission into the pipeline. Blocks only if the
// command buffer is full, and honors caller cancellation while waiting.
func (o *Orchestrator) PostMessage(ctx context.Context, cmd domain.PostMessageCommand) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case o.commands <- cmd:
		o.stats.IncrPosted()
		return nil
	}
}

func (o *Orchestrator) RegisterParticipant(pID string, roomID domain.RoomID, sink contract.EventSink) {
	o.registry.Subscribe(pID, roomID, sink)
}

// UnregisterParticipant disconnects a user from every room they joined.
func (o *Orchestrator) UnregisterParticipant(pID string) {
	o.registry.UnsubscribeAll(pID)
}

// Start prepares the pipeline (moderation automaton, workers, telemetry) and
// then runs the supervisor. Preparation happens before the critical section
// to keep the lock short; the call blocks until Stop or context cancel.
func (o *Orchestrator) Start(ctx context.Context) error {
	moderationWorker, err := o.prepareModeration("censored", o.charReplacement)
	if err != nil {
		return err
	}

	roomWorker := workers.NewRoomWorker(o, o.sanitizedEvents, o.broadcastEvents, o.log)

	o.mu.Lock()
	fanoutWorker := workers.NewEventFanout(o.log, o.permanentSinks, o.registry,
		o.broadcastEvents, o.telemetryEvents, o.sinkTimeout, o.stats)
	o.supervisor.Add(moderationWorker, roomWorker, fanoutWorker,
		o.prepareCapacityWorker(),
		workers.NewTelemetryWorker(o.log, o.telemetryEvents, o.prepareHandlers()),
		workers.NewHealthWorker(o.log, o.stats, o.metricInterval),
	)
	o.mu.Unlock()

	go o.stats.Listen(ctx)

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// prepareModeration loads censored words and builds the Aho-Corasick automaton.
func (o *Orchestrator) prepareModeration(path string, charReplacement rune) (contract.Worker, error) {
	loader := NewCensoredLoader(censoredFolder)
	data, err := loader.LoadAll(path)
	if err != nil {
		return nil, err
	}

	o.log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	o.log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	moderator, err := moderation.NewModerator(data.Words, charReplacement)
	if err != nil {
		return nil, err
	}

	return workers.NewModerationWorker(moderator, o.commands, o.sanitizedEvents, o.log), nil
}

func (o *Orchestrator) prepareCapacityWorker() contract.Worker {
	channels := []workers.NamedChannel{
		{Name: "commands", Channel: o.commands},
		{Name: "sanitized", Channel: o.sanitizedEvents},
		{Name: "broadcast", Channel: o.broadcastEvents},
	}
	return workers.NewChannelCapacityWorker(o.log, channels, o.telemetryEvents, o.metricInterval)
}

func (o *Orchestrator) prepareHandlers() []event.Handler {
	return []event.Handler{
		event.NewLatencyHandler(o.log, o.latencyThreshold),
		event.NewChannelCapacityHandler(o.log, o.lowCapacityThreshold),
		event.NewWorkerRestartedHandler(o.log, o.stats.IncrWorkerRestarts),
	}
}

// Stop initiates a graceful shutdown: the supervision context is canceled and
// workers drain on their own.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
