package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

func FromAppointment(ap *models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:             ap.ID,
		ProfessionalID: ap.ProfessionalID,
		Date:           ap.Date,
		StartTime:      ap.StartTime,
		Status:         ap.Status,
		ClientName:     ap.ClientName,
		ClientPhone:    ap.ClientPhone,
		Services:       make([]AppointmentServiceDTO, 0, len(ap.Services)),
		CreatedAt:      ap.CreatedAt,
	}
	for _, s := range ap.Services {
		out.Services = append(out.Services, AppointmentServiceDTO{
			ID:          s.ID,
			Name:        s.Name,
			DurationMin: s.DurationMin,
			Price:       s.Price,
		})
		out.TotalDuration += s.DurationMin
		out.TotalPrice += s.Price
	}
	return out
}
