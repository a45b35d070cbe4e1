package appointment

import (
	"context"
	"errors"
	"sync"
	"testing"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestCreateAppointment_Success(t *testing.T) {
	f := newFixture(t)

	ap := f.book(t, "b1", "2025-06-01", "10:00", "s1", "s2", "s1")

	if ap.ID == "" || ap.ClientID == "" {
		t.Fatalf("expected ids to be assigned, got %+v", ap)
	}
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("expected SCHEDULED, got %s", ap.Status)
	}
	if ids := ap.ServiceIDs(); len(ids) != 2 || ids[0] != "s1" || ids[1] != "s2" {
		t.Fatalf("expected deduplicated services [s1 s2], got %v", ids)
	}

	if got := f.auditActions(t, "b1"); len(got) != 1 || got[0] != "appointment_created" {
		t.Fatalf("unexpected audit trail %v", got)
	}
}

func TestCreateAppointment_RejectsDuplicateUntilCancelled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, "b1", "2025-06-01", "10:00")

	_, err := f.create.Execute(ctx, CreateAppointmentInput{
		ProfessionalID: "b1", ClientName: "Bruno", ClientPhone: "11888880000",
		ServiceIDs: []string{"s2"}, Date: "2025-06-01", StartTime: "10:00",
	})
	if !httperr.IsBusiness(err, domain.CodeSlotConflict) {
		t.Fatalf("expected slot_conflict, got %v", err)
	}

	// outro profissional e outro dia não colidem
	f.book(t, "b2", "2025-06-01", "10:00")
	f.book(t, "b1", "2025-06-02", "10:00")

	if _, err := f.status.Execute(ctx, UpdateStatusInput{AppointmentID: first.ID, Status: "CANCELLED"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	f.book(t, "b1", "2025-06-01", "10:00")

	got := f.auditActions(t, "b1")
	var conflicts int
	for _, a := range got {
		if a == "appointment_conflict" {
			conflicts++
		}
	}
	if conflicts != 1 {
		t.Fatalf("expected one conflict audit event, got %v", got)
	}
}

func TestCreateAppointment_LongServiceDoesNotBlockNextSlot(t *testing.T) {
	f := newFixture(t)

	// Combo Premium dura 60min, mas só o horário de início fica ocupado
	f.book(t, "b1", "2025-06-01", "10:00", "s3")
	f.book(t, "b1", "2025-06-01", "10:30")
}

func TestCreateAppointment_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	valid := CreateAppointmentInput{
		ProfessionalID: "b1", ClientName: "Ana", ClientPhone: "11999990000",
		ServiceIDs: []string{"s1"}, Date: "2025-06-01", StartTime: "10:00",
	}

	tests := []struct {
		name   string
		mutate func(in *CreateAppointmentInput)
		code   string
	}{
		{"blank name", func(in *CreateAppointmentInput) { in.ClientName = "  " }, domain.CodeInvalidRequest},
		{"no services", func(in *CreateAppointmentInput) { in.ServiceIDs = []string{" "} }, domain.CodeInvalidRequest},
		{"bad date", func(in *CreateAppointmentInput) { in.Date = "2025-6-1" }, domain.CodeInvalidDateOrTime},
		{"bad time", func(in *CreateAppointmentInput) { in.StartTime = "9:00" }, domain.CodeInvalidDateOrTime},
		{"past day", func(in *CreateAppointmentInput) { in.Date = "2025-05-31" }, domain.CodePastSlot},
		{"earlier today", func(in *CreateAppointmentInput) { in.StartTime = "07:30" }, domain.CodePastSlot},
		{"in break", func(in *CreateAppointmentInput) { in.StartTime = "12:30" }, domain.CodeOutsideWorkingHours},
		{"off grid", func(in *CreateAppointmentInput) { in.StartTime = "10:15" }, domain.CodeOutsideWorkingHours},
		{"after hours", func(in *CreateAppointmentInput) { in.StartTime = "19:00" }, domain.CodeOutsideWorkingHours},
		{"unknown professional", func(in *CreateAppointmentInput) { in.ProfessionalID = "b9" }, domain.CodeProfessionalNotFound},
		{"unknown service", func(in *CreateAppointmentInput) { in.ServiceIDs = []string{"s1", "s7"} }, domain.CodeServiceNotFound},
		{"broken schedule", func(in *CreateAppointmentInput) { in.ProfessionalID = "b3" }, domain.CodeConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := f.create.Execute(ctx, in)
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}
}

func TestCreateAppointment_BreakEndIsBookable(t *testing.T) {
	f := newFixture(t)
	f.book(t, "b1", "2025-06-01", "13:00")
	f.book(t, "b1", "2025-06-01", "18:30")
}

func TestCreateAppointment_LockContention(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateAppointment(f.repo, busyLocker{}, f.audit, domain.DefaultSlotInterval, fixedNow)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: "b1", ClientName: "Ana", ClientPhone: "11999990000",
		ServiceIDs: []string{"s1"}, Date: "2025-06-01", StartTime: "10:00",
	})
	if !httperr.IsBusiness(err, domain.CodeSlotBeingBooked) {
		t.Fatalf("expected slot_being_booked, got %v", err)
	}
}

func TestCreateAppointment_StorageGuardStillApplies(t *testing.T) {
	f := newFixture(t)

	// roster vazio na leitura: só o repositório pode barrar a duplicata
	repo := &fakeRepo{
		Repository: f.repo,
		listForDayFn: func(context.Context, string, string) ([]models.Appointment, error) {
			return nil, nil
		},
	}
	f.book(t, "b1", "2025-06-01", "10:00")

	uc := NewCreateAppointment(repo, lock.NewLocalLocker(), f.audit, domain.DefaultSlotInterval, fixedNow)
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: "b1", ClientName: "Bruno", ClientPhone: "11888880000",
		ServiceIDs: []string{"s1"}, Date: "2025-06-01", StartTime: "10:00",
	})
	if !httperr.IsBusiness(err, domain.CodeSlotConflict) {
		t.Fatalf("expected slot_conflict from storage, got %v", err)
	}
}

func TestCreateAppointment_RepositoryError(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("connection reset")
	repo := &fakeRepo{
		Repository: f.repo,
		createFn:   func(context.Context, *models.Appointment) error { return boom },
	}

	uc := NewCreateAppointment(repo, lock.NewLocalLocker(), f.audit, domain.DefaultSlotInterval, fixedNow)
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ProfessionalID: "b1", ClientName: "Ana", ClientPhone: "11999990000",
		ServiceIDs: []string{"s1"}, Date: "2025-06-01", StartTime: "10:00",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestCreateAppointment_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t)

	const n = 20
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.create.Execute(context.Background(), CreateAppointmentInput{
				ProfessionalID: "b1", ClientName: "Ana", ClientPhone: "11999990000",
				ServiceIDs: []string{"s1"}, Date: "2025-06-01", StartTime: "16:00",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case httperr.IsBusiness(err, domain.CodeSlotConflict), httperr.IsBusiness(err, domain.CodeSlotBeingBooked):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || rejected != n-1 {
		t.Fatalf("expected exactly one booking, got %d ok and %d rejected", ok, rejected)
	}
}
