package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	listByDate   *ucAppointment.ListAppointmentsByDate
	listClient   *ucAppointment.ListClientAppointments
	summary      *ucAppointment.GetDailySummary
	now          func() time.Time
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listClient *ucAppointment.ListClientAppointments,
	summary *ucAppointment.GetDailySummary,
	now func() time.Time,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		listByDate:   listByDate,
		listClient:   listClient,
		summary:      summary,
		now:          now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID string   `json:"professional_id" binding:"required"`
	ServiceIDs     []string `json:"service_ids" binding:"required,min=1,dive,required"`
	Date           string   `json:"date" binding:"required,date"` // YYYY-MM-DD
	Time           string   `json:"time" binding:"required,clock"` // HH:mm
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CLIENT
// ======================================================

// Create books for the signed-in client; name and phone come from the token.
func (h *AppointmentHandler) Create(c *gin.Context) {
	client := middleware.CurrentClient(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ProfessionalID: req.ProfessionalID,
		ClientName:     client.Name,
		ClientPhone:    client.Phone,
		ServiceIDs:     req.ServiceIDs,
		Date:           req.Date,
		StartTime:      req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	client := middleware.CurrentClient(c)

	list, err := h.listClient.Execute(c.Request.Context(), client.ID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) CancelMine(c *gin.Context) {
	ap, err := h.updateStatus.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: c.Param("id"),
		Status:        "CANCELLED",
		Actor:         middleware.CurrentClient(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// STAFF
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	staff := middleware.CurrentStaff(c)

	date := c.DefaultQuery("date", timezone.Today(h.now))
	includeCancelled, _ := strconv.ParseBool(c.Query("include_cancelled"))

	list, err := h.listByDate.Execute(c.Request.Context(), staff.ProfessionalID, date, includeCancelled)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) Summary(c *gin.Context) {
	staff := middleware.CurrentStaff(c)

	date := c.DefaultQuery("date", timezone.Today(h.now))

	sum, err := h.summary.Execute(c.Request.Context(), staff.ProfessionalID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, sum)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: c.Param("id"),
		Status:        req.Status,
		Actor:         middleware.CurrentStaff(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
