package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

type GetAvailability struct {
	repo     domain.Repository
	interval int
}

func NewGetAvailability(repo domain.Repository, interval int) *GetAvailability {
	return &GetAvailability{repo: repo, interval: interval}
}

// Execute validates the date and the stored schedule, then hands the day's
// roster to the availability engine. Past dates are not rejected here.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	if _, err := domain.ParseDate(in.Date); err != nil {
		return nil, err
	}

	p, err := uc.repo.GetProfessional(ctx, in.ProfessionalID)
	if err != nil {
		return nil, err
	}

	sched, err := domain.ScheduleFromProfessional(p, uc.interval)
	if err != nil {
		return nil, err
	}

	roster, err := uc.repo.ListAppointmentsForDay(ctx, p.ID, in.Date)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(in.Date, sched, roster), nil
}
