package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

// ListClientAppointments is the client's "my appointments": cancelled ones
// are hidden, newest date first.
type ListClientAppointments struct {
	repo domain.Repository
}

func NewListClientAppointments(repo domain.Repository) *ListClientAppointments {
	return &ListClientAppointments{repo: repo}
}

func (uc *ListClientAppointments) Execute(
	ctx context.Context,
	clientID string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		if !domain.IsActive(domain.Status(appointments[i].Status)) {
			continue
		}
		out = append(out, dto.FromAppointment(&appointments[i]))
	}
	return out, nil
}
