package account

import (
	"testing"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestFromProfessional(t *testing.T) {
	p := &models.Professional{
		ID: "b1", Name: "Arthur", Phone: "5511912345678", PINHash: "hash",
		WorkStart: "09:00", WorkEnd: "19:00", BreakStart: "12:00", BreakEnd: "13:00",
	}

	acc := FromProfessional(p, 30)
	if acc.Role() != RoleStaff || Subject(acc) != "b1" {
		t.Fatalf("unexpected account %+v", acc)
	}
	if acc.Schedule == nil || acc.Schedule.WorkStart.String() != "09:00" {
		t.Fatalf("expected schedule to be attached, got %+v", acc.Schedule)
	}

	p.BreakEnd = "08:00"
	if FromProfessional(p, 30).Schedule != nil {
		t.Fatal("expected malformed schedule to be left out")
	}
}

func TestSubject(t *testing.T) {
	var a Account = FromClient(&models.Client{ID: "c-1", Name: "Ana", Phone: "11999990000"})

	if a.Role() != RoleClient {
		t.Fatalf("expected client role, got %s", a.Role())
	}
	if Subject(a) != "c-1" || a.DisplayName() != "Ana" || a.ContactPhone() != "11999990000" {
		t.Fatalf("unexpected client account %+v", a)
	}
}
