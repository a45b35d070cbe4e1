package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestCanTransition(t *testing.T) {
	all := []Status{StatusScheduled, StatusCompleted, StatusNoShow, StatusCancelled}

	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to)
			legal := from == StatusScheduled && to != StatusScheduled

			if legal && err != nil {
				t.Fatalf("%s -> %s: unexpected error %v", from, to, err)
			}
			if !legal && !httperr.IsBusiness(err, CodeInvalidTransition) {
				t.Fatalf("%s -> %s: expected invalid_transition, got %v", from, to, err)
			}
		}
	}
}

func TestTransition_CompleteThenRevert(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) || ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatalf("unexpected appointment after complete: %+v", ap)
	}

	err := Transition(ap, StatusScheduled, now)
	if !httperr.IsBusiness(err, CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("failed transition must not mutate status, got %s", ap.Status)
	}
}

func TestTransition_Cancel(t *testing.T) {
	now := time.Now()
	ap := &models.Appointment{Status: string(StatusScheduled)}

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.CancelledAt == nil {
		t.Fatal("expected cancelled_at to be set")
	}
	if err := Cancel(ap, now); !httperr.IsBusiness(err, CodeInvalidTransition) {
		t.Fatalf("expected second cancel to fail, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("NO_SHOW"); err != nil || s != StatusNoShow {
		t.Fatalf("expected NO_SHOW, got %q, %v", s, err)
	}
	if _, err := ParseStatus("done"); !httperr.IsBusiness(err, CodeInvalidRequest) {
		t.Fatalf("expected invalid_request, got %v", err)
	}
}
