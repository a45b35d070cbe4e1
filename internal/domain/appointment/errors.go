package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Error codes
// ===============================

const (
	CodeConfiguration        = "configuration_error"
	CodeSlotConflict         = "slot_conflict"
	CodeSlotBeingBooked      = "slot_being_booked"
	CodeInvalidTransition    = "invalid_transition"
	CodeNotFound             = "not_found"
	CodeProfessionalNotFound = "professional_not_found"
	CodeAppointmentNotFound  = "appointment_not_found"
	CodeServiceNotFound      = "service_not_found"
	CodeInvalidDateOrTime    = "invalid_date_or_time"
	CodePastSlot             = "past_slot"
	CodeOutsideWorkingHours  = "outside_working_hours"
	CodeInvalidRequest       = "invalid_request"
)

var (
	ErrConfiguration        = httperr.ErrBusiness(CodeConfiguration)
	ErrSlotConflict         = httperr.ErrBusiness(CodeSlotConflict)
	ErrSlotBeingBooked      = httperr.ErrBusiness(CodeSlotBeingBooked)
	ErrInvalidTransition    = httperr.ErrBusiness(CodeInvalidTransition)
	ErrNotFound             = httperr.ErrBusiness(CodeNotFound)
	ErrProfessionalNotFound = httperr.ErrBusiness(CodeProfessionalNotFound)
	ErrAppointmentNotFound  = httperr.ErrBusiness(CodeAppointmentNotFound)
	ErrServiceNotFound      = httperr.ErrBusiness(CodeServiceNotFound)
	ErrInvalidDateOrTime    = httperr.ErrBusiness(CodeInvalidDateOrTime)
	ErrPastSlot             = httperr.ErrBusiness(CodePastSlot)
	ErrOutsideWorkingHours  = httperr.ErrBusiness(CodeOutsideWorkingHours)
	ErrInvalidRequest       = httperr.ErrBusiness(CodeInvalidRequest)
)

// IsNotFound covers the generic code and every entity-specific variant.
func IsNotFound(err error) bool {
	switch httperr.CodeOf(err) {
	case CodeNotFound, CodeProfessionalNotFound, CodeAppointmentNotFound, CodeServiceNotFound:
		return true
	}
	return false
}
