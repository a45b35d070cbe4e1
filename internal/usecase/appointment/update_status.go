package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID string
	Status        string

	// Actor limits what can be touched: staff only their own agenda, clients
	// only cancelling their own bookings. nil means an internal caller.
	Actor account.Account
}

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	actor := "system"
	switch a := in.Actor.(type) {
	case account.StaffAccount:
		// agendamento de outro profissional: não revela que existe
		if ap.ProfessionalID != a.ProfessionalID {
			return nil, domain.ErrAppointmentNotFound
		}
		actor = "staff:" + a.ProfessionalID
	case account.ClientAccount:
		if ap.ClientID != a.ID {
			return nil, domain.ErrAppointmentNotFound
		}
		if to != domain.StatusCancelled {
			return nil, fmt.Errorf("%w: clients can only cancel", domain.ErrInvalidTransition)
		}
		actor = "client:" + a.ID
	}

	from := domain.Status(ap.Status)
	if err := domain.Transition(ap, to, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: ap.ProfessionalID,
		Actor:          actor,
		Action:         audit.ActionAppointmentStatusChanged,
		Entity:         "appointment",
		EntityID:       ap.ID,
		Metadata: map[string]string{
			"from": string(from),
			"to":   string(to),
		},
	})

	return ap, nil
}
