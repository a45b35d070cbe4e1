package appointment

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var brt = time.FixedZone("BRT", -3*60*60)

// 2025-06-01 08:00 no horário da loja
func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 8, 0, 0, 0, brt)
}

type fixture struct {
	repo   *repository.MemoryRepository
	store  *audit.MemoryStore
	audit  *audit.Dispatcher
	create *CreateAppointment
	status *UpdateAppointmentStatus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepository()
	repo.PutProfessional(models.Professional{
		ID: "b1", Name: "Carlos", Email: "carlos@barber.com", Active: true,
		WorkStart: "09:00", WorkEnd: "19:00", BreakStart: "12:00", BreakEnd: "13:00",
	})
	repo.PutProfessional(models.Professional{
		ID: "b2", Name: "Roberto", Email: "roberto@barber.com", Active: true,
		WorkStart: "10:00", WorkEnd: "20:00", BreakStart: "14:00", BreakEnd: "15:00",
	})
	repo.PutProfessional(models.Professional{
		ID: "b3", Name: "Quebrado", Email: "b3@barber.com", Active: true,
		WorkStart: "09:00", WorkEnd: "19:00", BreakStart: "13:00", BreakEnd: "12:00",
	})
	repo.PutService(models.Service{ID: "s1", Name: "Corte Social", DurationMin: 30, Price: 50, Active: true})
	repo.PutService(models.Service{ID: "s2", Name: "Barba Completa", DurationMin: 30, Price: 40, Active: true})
	repo.PutService(models.Service{ID: "s3", Name: "Combo Premium", DurationMin: 60, Price: 80, Active: true})

	store := audit.NewMemoryStore()
	d := audit.NewDispatcher(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(d.Close)

	return &fixture{
		repo:   repo,
		store:  store,
		audit:  d,
		create: NewCreateAppointment(repo, lock.NewLocalLocker(), d, domain.DefaultSlotInterval, fixedNow),
		status: NewUpdateAppointmentStatus(repo, d, fixedNow),
	}
}

func (f *fixture) book(t *testing.T, professionalID, date, start string, services ...string) *models.Appointment {
	t.Helper()
	if len(services) == 0 {
		services = []string{"s1"}
	}
	ap, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: professionalID,
		ClientName:     "Ana",
		ClientPhone:    "11999990000",
		ServiceIDs:     services,
		Date:           date,
		StartTime:      start,
	})
	if err != nil {
		t.Fatalf("book %s %s %s: %v", professionalID, date, start, err)
	}
	return ap
}

// auditActions flushes the dispatcher and returns the recorded actions, newest first.
func (f *fixture) auditActions(t *testing.T, professionalID string) []string {
	t.Helper()
	f.audit.Close()
	logs, _, err := f.store.List(context.Background(), audit.Filter{ProfessionalID: professionalID, Limit: 100})
	if err != nil {
		t.Fatalf("list audit: %v", err)
	}
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Action)
	}
	return out
}

// fakeRepo embeds a working repository and lets a test override single calls.
type fakeRepo struct {
	domain.Repository

	listForDayFn func(ctx context.Context, professionalID, date string) ([]models.Appointment, error)
	createFn     func(ctx context.Context, ap *models.Appointment) error
}

func (f *fakeRepo) ListAppointmentsForDay(ctx context.Context, professionalID, date string) ([]models.Appointment, error) {
	if f.listForDayFn != nil {
		return f.listForDayFn(ctx, professionalID, date)
	}
	return f.Repository.ListAppointmentsForDay(ctx, professionalID, date)
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createFn != nil {
		return f.createFn(ctx, ap)
	}
	return f.Repository.CreateAppointment(ctx, ap)
}

// busyLocker always reports the key as held by someone else.
type busyLocker struct{}

func (busyLocker) WithLock(context.Context, string, func(context.Context) error) error {
	return lock.ErrLockNotAcquired
}
