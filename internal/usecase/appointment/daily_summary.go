package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type GetDailySummary struct {
	repo domain.Repository
}

func NewGetDailySummary(repo domain.Repository) *GetDailySummary {
	return &GetDailySummary{repo: repo}
}

// Execute counts the day's bookings. Total excludes cancelled ones; revenue
// is the sum of service prices of completed appointments only.
func (uc *GetDailySummary) Execute(
	ctx context.Context,
	professionalID string,
	date string,
) (*dto.DailySummaryDTO, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, professionalID, date)
	if err != nil {
		return nil, err
	}

	out := &dto.DailySummaryDTO{Date: date}
	for _, ap := range appointments {
		switch domain.Status(ap.Status) {
		case domain.StatusCancelled:
			out.Cancelled++
			continue
		case domain.StatusCompleted:
			out.Completed++
			for _, s := range ap.Services {
				out.Revenue += s.Price
			}
		case domain.StatusNoShow:
			out.NoShow++
		}
		out.Total++
	}

	return out, nil
}
