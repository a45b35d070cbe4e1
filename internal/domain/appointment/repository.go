package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository is the storage collaborator. Implementations must keep at most one
// active appointment per SlotKey, atomically, in CreateAppointment.
type Repository interface {
	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		id string,
	) (*models.Professional, error)

	FindProfessionalByEmail(
		ctx context.Context,
		email string,
	) (*models.Professional, error)

	ListProfessionals(
		ctx context.Context,
	) ([]models.Professional, error)

	UpdateProfessional(
		ctx context.Context,
		p *models.Professional,
	) error

	// -------- Service --------
	ListServices(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Service, error)

	GetServices(
		ctx context.Context,
		ids []string,
	) ([]models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus persists ap only if the stored status is still from.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	// -------- Roster --------
	ListAppointmentsForDay(
		ctx context.Context,
		professionalID string,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForClient(
		ctx context.Context,
		clientID string,
	) ([]models.Appointment, error)
}
