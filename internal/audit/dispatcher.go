package audit

import "go.uber.org/zap"

// Audit actions recorded by the write pipeline.
const (
	ActionServiceCreated     = "service_created"
	ActionServiceUpdated     = "service_updated"
	ActionServiceDeleted     = "service_deleted"
	ActionAppointmentCreated = "appointment_created"
	ActionAppointmentUpdated = "appointment_updated"
	ActionAppointmentDeleted = "appointment_deleted"
	ActionBookingConflict    = "booking_conflict"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder is what the use cases depend on; Dispatcher is the production
// implementation.
type Recorder interface {
	Dispatch(ev Event)
}

// Dispatcher writes audit entries off the request path. Events are dropped
// when the queue is full: the audit trail must never fail an API call.
type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
