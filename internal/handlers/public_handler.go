package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo         domain.Repository
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(
	repo domain.Repository,
	availability *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		availability: availability,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// PublicProfessional hides contact and credential fields.
type PublicProfessional struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AvatarURL     string `json:"avatar_url"`
	Address       string `json:"address"`
	OperatingDays string `json:"operating_days"`
	Specialties   string `json:"specialties"`
	WorkStart     string `json:"work_start"`
	WorkEnd       string `json:"work_end"`
	BreakStart    string `json:"break_start"`
	BreakEnd      string `json:"break_end"`
}

func toPublicProfessional(p *models.Professional) PublicProfessional {
	return PublicProfessional{
		ID:            p.ID,
		Name:          p.Name,
		AvatarURL:     p.AvatarURL,
		Address:       p.Address,
		OperatingDays: p.OperatingDays,
		Specialties:   p.Specialties,
		WorkStart:     p.WorkStart,
		WorkEnd:       p.WorkEnd,
		BreakStart:    p.BreakStart,
		BreakEnd:      p.BreakEnd,
	}
}

////////////////////////////////////////////////////////
// CATALOGUE
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context(), true)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	list, err := h.repo.ListProfessionals(c.Request.Context())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	out := make([]PublicProfessional, 0, len(list))
	for i := range list {
		out = append(out, toPublicProfessional(&list[i]))
	}
	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// AVAILABILITY (REUSO TOTAL DO USE CASE)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Data obrigatória.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: c.Param("id"),
		Date:           date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional_id": c.Param("id"),
		"date":            date,
		"slots":           slots,
	})
}
