package workers

import (
	"context"
	"log/slog"
	"time"

	"teamboard/contract"
	"teamboard/domain/event"
	"teamboard/observability"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts room events to the permanent sinks (history index,
// projections) and to every subscriber currently registered for the event's
// room.
//
// It provides best-effort delivery: a slow or dead sink is abandoned after
// sinkTimeout and the failure is silently counted, never surfaced to the
// sender. A room with zero subscribers is not an error; the message was
// already logged upstream.
//
// Delivery is synchronous and in sink order. The single fanout worker handing
// consecutive events to each sink one at a time is what keeps per-room
// delivery order equal to dispatch order; subscriber sinks are non-blocking,
// so a slow reader drops events instead of stalling the room.
type EventFanout struct {
	log            *slog.Logger
	permanentSinks []contract.EventSink
	registry       contract.IRegistry
	events         chan event.DomainEvent
	telemetry      chan event.Event
	sinkTimeout    time.Duration
	stats          *observability.ChatStats
}

func NewEventFanout(log *slog.Logger, permanentSinks []contract.EventSink,
	registry contract.IRegistry, events chan event.DomainEvent,
	telemetry chan event.Event, sinkTimeout time.Duration,
	stats *observability.ChatStats) *EventFanout {
	return &EventFanout{
		log:            log,
		permanentSinks: permanentSinks,
		registry:       registry,
		events:         events,
		telemetry:      telemetry,
		sinkTimeout:    sinkTimeout,
		stats:          stats,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.Fanout(evt)

			select {
			case w.telemetry <- event.Event{
				Type:      event.MessageDeliveredType,
				CreatedAt: time.Now().UTC(),
				Payload:   evt,
			}:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		}
	}
}

// Fanout delivers one event to every sink in order, each consume bounded by
// the sink timeout so one stuck permanent sink cannot stall the room forever.
func (w *EventFanout) Fanout(evt event.DomainEvent) {
	sinks := append([]contract.EventSink{}, w.permanentSinks...)
	sinks = append(sinks, w.registry.GetSinksForRoom(evt.RoomID())...)

	for _, sink := range sinks {
		w.consume(sink, evt)
	}
}

func (w *EventFanout) consume(sink contract.EventSink, evt event.DomainEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), w.sinkTimeout)
	defer cancel()

	if err := sink.Consume(ctx, evt); err != nil {
		w.log.Debug("sink failed to consume event", "room", evt.RoomID(), "err", err)
		if w.stats != nil {
			w.stats.IncrDropped()
		}
		return
	}
	if w.stats != nil {
		w.stats.IncrDelivered(1)
	}
}
