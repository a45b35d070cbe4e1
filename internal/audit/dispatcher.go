package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ActionAppointmentCreated       = "appointment_created"
	ActionAppointmentConflict      = "appointment_conflict"
	ActionAppointmentStatusChanged = "appointment_status_changed"
	ActionScheduleUpdated          = "schedule_updated"
	ActionAvatarUpdated            = "avatar_updated"
)

type Event struct {
	ProfessionalID string
	Actor          string
	Action         string
	Entity         string
	EntityID       string
	Metadata       any
}

type Dispatcher struct {
	writer Writer
	log    *slog.Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(writer Writer, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		log:    log,
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.writer.Write(ctx, ev); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "entity_id", ev.EntityID, "error", err)
		}
		cancel()
	}
}

// Dispatch never blocks the request path.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains the queue; Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
		<-d.done
	})
}
