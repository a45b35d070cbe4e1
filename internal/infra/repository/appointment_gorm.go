package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ActiveSlotIndex is the partial unique index that backs the conflict guard in Postgres.
const ActiveSlotIndex = "ux_appointments_active_slot"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func notFound(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	id string,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&p).Error; err != nil {
		return nil, notFound(err, domain.ErrProfessionalNotFound)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) FindProfessionalByEmail(
	ctx context.Context,
	email string,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?) AND active = ?", email, true).
		First(&p).Error; err != nil {
		return nil, notFound(err, domain.ErrProfessionalNotFound)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) ListProfessionals(
	ctx context.Context,
) ([]models.Professional, error) {

	var list []models.Professional
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *AppointmentGormRepository) UpdateProfessional(
	ctx context.Context,
	p *models.Professional,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":        p.Name,
			"phone":       p.Phone,
			"avatar_url":  p.AvatarURL,
			"work_start":  p.WorkStart,
			"work_end":    p.WorkEnd,
			"break_start": p.BreakStart,
			"break_end":   p.BreakEnd,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrProfessionalNotFound
	}
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) ListServices(
	ctx context.Context,
	activeOnly bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var list []models.Service
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetServices returns the services in the order of ids; any unknown or
// inactive id fails the whole lookup.
func (r *AppointmentGormRepository) GetServices(
	ctx context.Context,
	ids []string,
) ([]models.Service, error) {

	var found []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, true).
		Find(&found).Error; err != nil {
		return nil, err
	}
	return orderServices(found, ids)
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
) (*models.Client, error) {

	client := models.Client{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
	}

	// telefone é único: em corrida, quem perde só relê
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(&client).Error; err != nil {
		return nil, err
	}

	var stored models.Client
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment checks and inserts inside one transaction. The row lock
// covers an existing active booking; the partial unique index covers two
// inserts racing on an empty slot.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roster []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND date = ? AND start_time = ? AND status <> ?",
				ap.ProfessionalID,
				ap.Date,
				ap.StartTime,
				string(domain.StatusCancelled),
			).
			Find(&roster).Error; err != nil {
			return err
		}

		if err := domain.AssertNoConflict(ap, roster); err != nil {
			return err
		}

		// serviços já existem; só grava a tabela de junção
		return tx.Omit("Services.*").Create(ap).Error
	})

	if httperr.IsUniqueViolation(err, ActiveSlotIndex) {
		return fmt.Errorf("%w: %s already booked", domain.ErrSlotConflict, ap.StartTime)
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, notFound(err, domain.ErrAppointmentNotFound)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(map[string]any{
			"status":       ap.Status,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"updated_at":   time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: status changed concurrently", domain.ErrInvalidTransition)
	}
	return nil
}

// --------------------------------------------------
// Roster
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	professionalID string,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("professional_id = ? AND date = ?", professionalID, date).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("client_id = ?", clientID).
		Order("date DESC, start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
