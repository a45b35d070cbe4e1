package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type AvailabilityInput struct {
	ProfessionalID string
	Date           string
}

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailableSlots maps (date, schedule, roster) to the day's slot grid.
//
// A slot is unavailable when it falls in the break window or when an active
// appointment of the same professional on the same date starts exactly at it.
// Appointments of other professionals or dates are ignored, so the roster may be
// the whole shop. Service duration is not considered.
func AvailableSlots(date string, sched Schedule, roster []models.Appointment) []TimeSlot {
	taken := make(map[string]struct{})
	for i := range roster {
		ap := &roster[i]
		if ap.ProfessionalID != sched.ProfessionalID || ap.Date != date {
			continue
		}
		if !IsActive(Status(ap.Status)) {
			continue
		}
		taken[ap.StartTime] = struct{}{}
	}

	candidates := sched.Candidates()
	slots := make([]TimeSlot, 0, len(candidates))
	for _, c := range candidates {
		hm := c.String()
		_, busy := taken[hm]
		slots = append(slots, TimeSlot{
			Time:      hm,
			Available: !busy && !sched.InBreak(c),
		})
	}
	return slots
}
