package httperr

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness("slot_conflict"))

	if !IsBusiness(err, "slot_conflict") {
		t.Fatal("expected wrapped business error to match its code")
	}
	if IsBusiness(err, "not_found") {
		t.Fatal("expected different code not to match")
	}
	if IsBusiness(fmt.Errorf("plain"), "slot_conflict") {
		t.Fatal("expected plain error not to match")
	}
	if got := CodeOf(err); got != "slot_conflict" {
		t.Fatalf("expected code slot_conflict, got %q", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "ux_appointments_active_slot"}
	wrapped := fmt.Errorf("insert appointment: %w", pgErr)

	if !IsUniqueViolation(wrapped, "") {
		t.Fatal("expected any unique violation to match")
	}
	if !IsUniqueViolation(wrapped, "ux_appointments_active_slot") {
		t.Fatal("expected named constraint to match")
	}
	if IsUniqueViolation(wrapped, "clients_phone_key") {
		t.Fatal("expected other constraint not to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23P01"}, "") {
		t.Fatal("expected exclusion violation not to count as unique violation")
	}
}
