package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// SlotKey identifies the unit of exclusivity: at most one active appointment per key.
type SlotKey struct {
	ProfessionalID string
	Date           string
	StartTime      string
}

func KeyOf(ap *models.Appointment) SlotKey {
	return SlotKey{
		ProfessionalID: ap.ProfessionalID,
		Date:           ap.Date,
		StartTime:      ap.StartTime,
	}
}

func (k SlotKey) String() string {
	return fmt.Sprintf("slot:%s:%s:%s", k.ProfessionalID, k.Date, k.StartTime)
}

// AssertNoConflict rejects the candidate if the roster already holds an active
// appointment for the same slot key.
func AssertNoConflict(candidate *models.Appointment, roster []models.Appointment) error {
	key := KeyOf(candidate)
	for i := range roster {
		ap := &roster[i]
		if ap.ID != "" && ap.ID == candidate.ID {
			continue
		}
		if KeyOf(ap) == key && IsActive(Status(ap.Status)) {
			return fmt.Errorf("%w: %s already booked", ErrSlotConflict, key.StartTime)
		}
	}
	return nil
}
