package professional

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ScheduleInput struct {
	WorkStart  string
	WorkEnd    string
	BreakStart string
	BreakEnd   string
}

type UpdateSchedule struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	interval int
}

func NewUpdateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
	interval int,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:     repo,
		audit:    audit,
		interval: interval,
	}
}

// Execute only persists a schedule that passes validation, so availability
// never runs on a malformed one written through the API. Existing bookings
// are kept even if they now fall outside the new hours.
func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	professionalID string,
	in ScheduleInput,
) (*models.Professional, error) {

	sched, err := domain.NewSchedule(
		professionalID,
		in.WorkStart, in.WorkEnd,
		in.BreakStart, in.BreakEnd,
		uc.interval,
	)
	if err != nil {
		return nil, err
	}

	p, err := uc.repo.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	old := map[string]string{
		"work_start":  p.WorkStart,
		"work_end":    p.WorkEnd,
		"break_start": p.BreakStart,
		"break_end":   p.BreakEnd,
	}

	p.WorkStart = sched.WorkStart.String()
	p.WorkEnd = sched.WorkEnd.String()
	p.BreakStart = sched.BreakStart.String()
	p.BreakEnd = sched.BreakEnd.String()

	if err := uc.repo.UpdateProfessional(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: p.ID,
		Actor:          "staff:" + p.ID,
		Action:         audit.ActionScheduleUpdated,
		Entity:         "professional",
		EntityID:       p.ID,
		Metadata:       map[string]any{"old": old},
	})

	return p, nil
}
