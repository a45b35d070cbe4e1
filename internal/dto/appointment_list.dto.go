package dto

import "time"

type AppointmentServiceDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`
}

type AppointmentListDTO struct {
	ID             string                  `json:"id"`
	ProfessionalID string                  `json:"professional_id"`
	Date           string                  `json:"date"`
	StartTime      string                  `json:"start_time"`
	Status         string                  `json:"status"`
	ClientName     string                  `json:"client_name"`
	ClientPhone    string                  `json:"client_phone"`
	Services       []AppointmentServiceDTO `json:"services"`
	TotalDuration  int                     `json:"total_duration_min"`
	TotalPrice     float64                 `json:"total_price"`
	CreatedAt      time.Time               `json:"created_at"`
}
