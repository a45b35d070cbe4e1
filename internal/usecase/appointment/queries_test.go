package appointment

import (
	"context"
	"testing"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestGetAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewGetAvailability(f.repo, domain.DefaultSlotInterval)

	f.book(t, "b1", "2025-06-01", "10:00")

	slots, err := uc.Execute(ctx, domain.AvailabilityInput{ProfessionalID: "b1", Date: "2025-06-01"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	for _, s := range slots {
		want := s.Time != "10:00" && s.Time != "12:00" && s.Time != "12:30"
		if s.Available != want {
			t.Fatalf("slot %s: expected available=%v", s.Time, want)
		}
	}

	other, _ := uc.Execute(ctx, domain.AvailabilityInput{ProfessionalID: "b2", Date: "2025-06-01"})
	if other[0].Time != "10:00" || !other[0].Available {
		t.Fatalf("expected b2 10:00 free, got %+v", other[0])
	}

	if _, err := uc.Execute(ctx, domain.AvailabilityInput{ProfessionalID: "b3", Date: "2025-06-01"}); !httperr.IsBusiness(err, domain.CodeConfiguration) {
		t.Fatalf("expected configuration_error, got %v", err)
	}
	if _, err := uc.Execute(ctx, domain.AvailabilityInput{ProfessionalID: "b1", Date: "01/06/2025"}); !httperr.IsBusiness(err, domain.CodeInvalidDateOrTime) {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
	if _, err := uc.Execute(ctx, domain.AvailabilityInput{ProfessionalID: "b9", Date: "2025-06-01"}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListAppointmentsByDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewListAppointmentsByDate(f.repo)

	f.book(t, "b1", "2025-06-01", "15:00", "s3")
	late := f.book(t, "b1", "2025-06-01", "09:00", "s1", "s2")
	if _, err := f.status.Execute(ctx, UpdateStatusInput{AppointmentID: late.ID, Status: "CANCELLED"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	active, err := uc.Execute(ctx, "b1", "2025-06-01", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].StartTime != "15:00" || active[0].TotalDuration != 60 {
		t.Fatalf("unexpected agenda %+v", active)
	}

	all, _ := uc.Execute(ctx, "b1", "2025-06-01", true)
	if len(all) != 2 || all[0].StartTime != "09:00" || all[0].TotalPrice != 90 {
		t.Fatalf("expected cancelled first by start time, got %+v", all)
	}
}

func TestListClientAppointments_HidesCancelled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewListClientAppointments(f.repo)

	a := f.book(t, "b1", "2025-06-01", "10:00")
	f.book(t, "b2", "2025-06-03", "11:00")
	c := f.book(t, "b1", "2025-06-02", "09:00")
	if _, err := f.status.Execute(ctx, UpdateStatusInput{AppointmentID: c.ID, Status: "CANCELLED"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	mine, err := uc.Execute(ctx, a.ClientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 || mine[0].Date != "2025-06-03" || mine[1].ID != a.ID {
		t.Fatalf("unexpected list %+v", mine)
	}
}

func TestGetDailySummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewGetDailySummary(f.repo)

	done := f.book(t, "b1", "2025-06-01", "09:00", "s1", "s2")
	combo := f.book(t, "b1", "2025-06-01", "09:30", "s3")
	missed := f.book(t, "b1", "2025-06-01", "10:00")
	gone := f.book(t, "b1", "2025-06-01", "10:30", "s3")
	f.book(t, "b1", "2025-06-01", "11:00")
	f.book(t, "b2", "2025-06-01", "10:00", "s3")

	for id, st := range map[string]string{
		done.ID:   "COMPLETED",
		combo.ID:  "COMPLETED",
		missed.ID: "NO_SHOW",
		gone.ID:   "CANCELLED",
	} {
		if _, err := f.status.Execute(ctx, UpdateStatusInput{AppointmentID: id, Status: st}); err != nil {
			t.Fatalf("%s: %v", st, err)
		}
	}

	sum, err := uc.Execute(ctx, "b1", "2025-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Total != 4 || sum.Completed != 2 || sum.NoShow != 1 || sum.Cancelled != 1 {
		t.Fatalf("unexpected counters %+v", sum)
	}
	if sum.Revenue != 170 {
		t.Fatalf("expected revenue 170, got %v", sum.Revenue)
	}
}
