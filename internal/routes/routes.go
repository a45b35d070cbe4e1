package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucProfessional "github.com/BruksfildServices01/salon-scheduler/internal/usecase/professional"
)

// Deps are the singletons built in main (or in tests).
type Deps struct {
	Config *config.Config
	Logger *logger.Logger

	Repo       domain.Repository
	Locker     lock.Locker
	Audit      *audit.Dispatcher
	AuditStore audit.Store

	// Avatars nil desliga o upload (503)
	Avatars ucProfessional.AvatarUploader

	Health map[string]handlers.Pinger
	Now    func() time.Time
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		middleware.CORSMiddleware(d.Config.CORSOrigins),
	)

	interval := d.Config.SlotIntervalMinutes

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		d.Repo,
		interval,
	)

	createAppointmentUC := ucAppointment.NewCreateAppointment(
		d.Repo,
		d.Locker,
		d.Audit,
		interval,
		d.Now,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		d.Repo,
		d.Audit,
		d.Now,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(d.Repo)
	listClientAppointmentsUC := ucAppointment.NewListClientAppointments(d.Repo)
	dailySummaryUC := ucAppointment.NewGetDailySummary(d.Repo)

	// ======================================================
	// 🧠 USE CASES: PROFESSIONAL
	// ======================================================
	updateScheduleUC := ucProfessional.NewUpdateSchedule(d.Repo, d.Audit, interval)

	var updateAvatarUC *ucProfessional.UpdateAvatar
	if d.Avatars != nil {
		updateAvatarUC = ucProfessional.NewUpdateAvatar(d.Repo, d.Avatars, d.Audit)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Repo, d.Config.JWTSecret, d.Config.TokenTTL, interval)
	publicHandler := handlers.NewPublicHandler(d.Repo, availabilityUC)
	meHandler := handlers.NewMeHandler(d.Repo, updateAvatarUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(d.Repo, updateScheduleUC, interval)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditStore)
	healthHandler := handlers.NewHealthHandler(d.Health)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		listAppointmentsByDateUC,
		listClientAppointmentsUC,
		dailySummaryUC,
		d.Now,
	)

	// ======================================================
	// ❤️ HEALTH
	// ======================================================
	r.GET("/health", healthHandler.Ready)
	r.GET("/health/live", healthHandler.Live)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/professionals", publicHandler.ListProfessionals)
		api.GET("/professionals/:id/availability", publicHandler.Availability)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/staff/login", authHandler.StaffLogin)
		api.POST("/auth/client/login", authHandler.ClientLogin)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
		secured.GET("/whoami", meHandler.GetMe)

		// ------------------------------
		// 👤 CLIENTE
		// ------------------------------
		client := secured.Group("/")
		client.Use(middleware.RequireRole(account.RoleClient))
		{
			client.POST("/appointments", appointmentHandler.Create)
			client.GET("/my/appointments", appointmentHandler.ListMine)
			client.PATCH("/my/appointments/:id/cancel", appointmentHandler.CancelMine)
		}

		// ------------------------------
		// ✂️ PROFISSIONAL
		// ------------------------------
		staff := secured.Group("/me")
		staff.Use(middleware.RequireRole(account.RoleStaff))
		{
			staff.GET("", meHandler.GetMe)

			staff.GET("/appointments", appointmentHandler.ListByDate)
			staff.GET("/summary", appointmentHandler.Summary)
			staff.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			staff.GET("/schedule", workingHoursHandler.Get)
			staff.PUT("/schedule", workingHoursHandler.Update)
			staff.PUT("/avatar", meHandler.UpdateAvatar)

			staff.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
