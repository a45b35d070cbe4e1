package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	professionalID string,
	date string,
	includeCancelled bool,
) ([]dto.AppointmentListDTO, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		professionalID,
		date,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]
		if !includeCancelled && !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		out = append(out, dto.FromAppointment(ap))
	}

	return out, nil
}
