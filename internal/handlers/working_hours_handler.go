package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucProfessional "github.com/BruksfildServices01/salon-scheduler/internal/usecase/professional"
)

type WorkingHoursHandler struct {
	repo     domain.Repository
	update   *ucProfessional.UpdateSchedule
	interval int
}

func NewWorkingHoursHandler(
	repo domain.Repository,
	update *ucProfessional.UpdateSchedule,
	interval int,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{repo: repo, update: update, interval: interval}
}

type ScheduleRequest struct {
	WorkStart  string `json:"work_start" binding:"required,clock"`
	WorkEnd    string `json:"work_end" binding:"required,clock"`
	BreakStart string `json:"break_start" binding:"required,clock"`
	BreakEnd   string `json:"break_end" binding:"required,clock"`
}

type ScheduleResponse struct {
	WorkStart       string `json:"work_start"`
	WorkEnd         string `json:"work_end"`
	BreakStart      string `json:"break_start"`
	BreakEnd        string `json:"break_end"`
	IntervalMinutes int    `json:"interval_minutes"`
	Valid           bool   `json:"valid"`
	Problem         string `json:"problem,omitempty"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	staff := middleware.CurrentStaff(c)

	p, err := h.repo.GetProfessional(c.Request.Context(), staff.ProfessionalID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	resp := ScheduleResponse{
		WorkStart:       p.WorkStart,
		WorkEnd:         p.WorkEnd,
		BreakStart:      p.BreakStart,
		BreakEnd:        p.BreakEnd,
		IntervalMinutes: h.interval,
		Valid:           true,
	}
	if _, err := domain.ScheduleFromProfessional(p, h.interval); err != nil {
		resp.Valid = false
		resp.Problem = err.Error()
	}

	c.JSON(http.StatusOK, resp)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	staff := middleware.CurrentStaff(c)

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	p, err := h.update.Execute(c.Request.Context(), staff.ProfessionalID, ucProfessional.ScheduleInput{
		WorkStart:  req.WorkStart,
		WorkEnd:    req.WorkEnd,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{
		WorkStart:       p.WorkStart,
		WorkEnd:         p.WorkEnd,
		BreakStart:      p.BreakStart,
		BreakEnd:        p.BreakEnd,
		IntervalMinutes: h.interval,
		Valid:           true,
	})
}
