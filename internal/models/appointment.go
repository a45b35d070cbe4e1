package models

import "time"

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ProfessionalID string `gorm:"size:36;not null;index:idx_appointments_professional_date,priority:1" json:"professional_id"`
	ClientID       string `gorm:"type:uuid;not null;index" json:"client_id"`

	// snapshot do cliente no momento da reserva
	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	Date      string `gorm:"size:10;not null;index:idx_appointments_professional_date,priority:2" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`

	Status string `gorm:"size:20;not null;default:'SCHEDULED'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceIDs returns the identifiers of the booked services, in booking order.
func (a *Appointment) ServiceIDs() []string {
	ids := make([]string, 0, len(a.Services))
	for _, s := range a.Services {
		ids = append(ids, s.ID)
	}
	return ids
}
