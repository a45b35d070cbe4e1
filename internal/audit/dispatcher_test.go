package audit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type writerFunc func(ctx context.Context, ev Event) error

func (f writerFunc) Write(ctx context.Context, ev Event) error { return f(ctx, ev) }

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	store := NewMemoryStore()
	d := NewDispatcher(store, discard())

	d.Dispatch(Event{ProfessionalID: "b1", Action: ActionAppointmentCreated, EntityID: "a1", Metadata: map[string]string{"time": "10:00"}})
	d.Dispatch(Event{ProfessionalID: "b2", Action: ActionAppointmentCreated, EntityID: "a2"})
	d.Dispatch(Event{ProfessionalID: "b1", Action: ActionAppointmentStatusChanged, EntityID: "a1"})
	d.Close()

	logs, total, _ := store.List(context.Background(), Filter{ProfessionalID: "b1", Limit: 10})
	if len(logs) != 2 || total != 2 {
		t.Fatalf("expected 2 events for b1, got %d (total %d)", len(logs), total)
	}
	if logs[0].Action != ActionAppointmentStatusChanged {
		t.Fatalf("expected newest first, got %s", logs[0].Action)
	}
	if logs[1].Metadata != `{"time":"10:00"}` {
		t.Fatalf("expected JSON metadata, got %q", logs[1].Metadata)
	}
}

func TestDispatcher_WriterErrorDoesNotStopWorker(t *testing.T) {
	calls := 0
	d := NewDispatcher(writerFunc(func(context.Context, Event) error {
		calls++
		return errors.New("db down")
	}), discard())

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	if calls != 2 {
		t.Fatalf("expected 2 write attempts, got %d", calls)
	}
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Action: "ignored"})
}

func TestMemoryStore_FilterAndPage(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_ = store.Write(ctx, Event{ProfessionalID: "b1", Action: ActionAppointmentCreated, Entity: "appointment"})
	}
	_ = store.Write(ctx, Event{ProfessionalID: "b1", Action: ActionScheduleUpdated, Entity: "professional"})

	logs, total, _ := store.List(ctx, Filter{ProfessionalID: "b1", Action: ActionAppointmentCreated, Limit: 3})
	if total != 5 || len(logs) != 3 || logs[0].ID != 5 {
		t.Fatalf("expected 3 newest of 5 created rows, got %d rows (total %d)", len(logs), total)
	}

	page2, _, _ := store.List(ctx, Filter{ProfessionalID: "b1", Entity: "appointment", Limit: 3, Offset: 3})
	if len(page2) != 2 || page2[1].ID != 1 {
		t.Fatalf("unexpected second page %+v", page2)
	}

	empty, _, _ := store.List(ctx, Filter{ProfessionalID: "b1", Limit: 3, Offset: 50})
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(empty))
	}
}
