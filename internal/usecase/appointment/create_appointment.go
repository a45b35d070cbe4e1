package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProfessionalID string

	ClientName  string
	ClientPhone string

	ServiceIDs []string

	Date      string
	StartTime string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	locker   lock.Locker
	audit    *audit.Dispatcher
	interval int
	now      func() time.Time
}

// now must return the shop's wall clock; its Location is used to place the
// requested date and time.
func NewCreateAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
	interval int,
	now func() time.Time,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		locker:   locker,
		audit:    audit,
		interval: interval,
		now:      now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Entrada
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	phone := strings.TrimSpace(in.ClientPhone)
	serviceIDs := uniqueIDs(in.ServiceIDs)

	if in.ProfessionalID == "" || name == "" || phone == "" || len(serviceIDs) == 0 {
		return nil, fmt.Errorf("%w: professional, client name, phone and services are required", domain.ErrInvalidRequest)
	}

	day, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	clock, err := domain.ParseClock(in.StartTime)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Horário no passado
	// --------------------------------------------------
	now := uc.now()
	start := time.Date(
		day.Year(), day.Month(), day.Day(),
		int(clock)/60, int(clock)%60, 0, 0,
		now.Location(),
	)
	if start.Before(now) {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrPastSlot, in.Date, in.StartTime)
	}

	// --------------------------------------------------
	// 3️⃣ Profissional + expediente
	// --------------------------------------------------
	p, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	sched, err := domain.ScheduleFromProfessional(p, uc.interval)
	if err != nil {
		return nil, err
	}
	if !sched.Offers(clock) {
		return nil, fmt.Errorf("%w: %s is not an offered slot", domain.ErrOutsideWorkingHours, clock)
	}

	// --------------------------------------------------
	// 4️⃣ Serviços
	// --------------------------------------------------
	services, err := uc.repo.GetServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Cliente (get or create)
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(ctx, name, phone)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ID:             uuid.NewString(),
		ProfessionalID: p.ID,
		ClientID:       client.ID,
		ClientName:     name,
		ClientPhone:    phone,
		Services:       services,
		Date:           in.Date,
		StartTime:      clock.String(),
		Status:         string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// 6️⃣ Conflito + criação sob o lock do horário
	// --------------------------------------------------
	key := domain.KeyOf(ap)
	err = uc.locker.WithLock(ctx, key.String(), func(ctx context.Context) error {
		roster, err := uc.repo.ListAppointmentsForDay(ctx, ap.ProfessionalID, ap.Date)
		if err != nil {
			return err
		}
		if err := domain.AssertNoConflict(ap, roster); err != nil {
			return err
		}
		return uc.repo.CreateAppointment(ctx, ap)
	})

	switch {
	case errors.Is(err, lock.ErrLockNotAcquired):
		uc.dispatchConflict(ap, domain.CodeSlotBeingBooked)
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotBeingBooked, key)
	case httperr.IsBusiness(err, domain.CodeSlotConflict):
		uc.dispatchConflict(ap, domain.CodeSlotConflict)
		return nil, err
	case err != nil:
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: ap.ProfessionalID,
		Actor:          "client:" + client.ID,
		Action:         audit.ActionAppointmentCreated,
		Entity:         "appointment",
		EntityID:       ap.ID,
		Metadata: map[string]any{
			"date":     ap.Date,
			"time":     ap.StartTime,
			"services": ap.ServiceIDs(),
		},
	})

	return ap, nil
}

func (uc *CreateAppointment) dispatchConflict(ap *models.Appointment, reason string) {
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: ap.ProfessionalID,
		Actor:          "client:" + ap.ClientID,
		Action:         audit.ActionAppointmentConflict,
		Entity:         "appointment",
		Metadata: map[string]any{
			"date":   ap.Date,
			"time":   ap.StartTime,
			"reason": reason,
		},
	})
}

// uniqueIDs trims, drops blanks and keeps the first occurrence of each id.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
