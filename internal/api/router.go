package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/medoffice/office-api/docs"
	"github.com/medoffice/office-api/internal/api/handler"
	"github.com/medoffice/office-api/internal/api/middleware"
	"github.com/medoffice/office-api/internal/api/validation"
	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

const bodyLimit = "1M"

// Options configures the router.
type Options struct {
	Development  bool
	FrontendURL  string
	SecureCookie bool
	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// prometheus default registry.
	Registry *prometheus.Registry
}

// Services are the use cases exposed over HTTP. Audit and AuditLog may be
// nil when no audit store is configured.
type Services struct {
	Authenticator  ports.Authenticator
	Auth           ports.AuthService
	Users          ports.UserService
	Patients       ports.PatientService
	Appointments   ports.AppointmentService
	MedicalRecords ports.MedicalRecordService
	Audit          ports.AuditRecorder
	AuditLog       ports.AuditService
	Health         *handler.HealthHandler
}

var (
	anyRole    = []domain.Role{domain.RoleAdmin, domain.RoleDoctor, domain.RoleReceptionist}
	adminOnly  = []domain.Role{domain.RoleAdmin}
	frontDesk  = []domain.Role{domain.RoleAdmin, domain.RoleReceptionist}
	clinicians = []domain.Role{domain.RoleAdmin, domain.RoleDoctor}
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(log zerolog.Logger, opts Options, svc Services) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, opts.Development)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "office",
		Registerer: registerer,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(middleware.Recovery(log))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
		},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	// --- Operations (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", svc.Health.Liveness)
	e.GET("/health/ready", svc.Health.Readiness)

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", svc.Health.Liveness)

	guard := func(roles []domain.Role, stages ...middleware.Stage) echo.MiddlewareFunc {
		return middleware.Chain(append(middleware.Guard(svc.Authenticator, roles...), stages...)...)
	}
	byID := middleware.UUIDParams("id")

	// --- Auth ---
	authHandler := handler.NewAuthHandler(svc.Auth, opts.SecureCookie)
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register, middleware.Chain(middleware.RequireBodyFields("email", "password")))
	auth.POST("/login", authHandler.Login, middleware.Chain(middleware.RequireBodyFields("email", "password")))
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, guard(anyRole))

	// --- Users ---
	userHandler := handler.NewUserHandler(svc.Users)
	users := apiGroup.Group("/users")
	users.GET("", userHandler.List, guard(adminOnly))
	users.GET("/profile", userHandler.Profile, guard(anyRole))
	users.PUT("/profile", userHandler.UpdateProfile, guard(anyRole))
	users.POST("/change-password", userHandler.ChangePassword,
		guard(anyRole, middleware.RequireBodyFields("current_password", "new_password")))
	users.GET("/:id", userHandler.Get, guard(adminOnly, byID))
	users.PUT("/:id", userHandler.Update, guard(adminOnly, byID))
	users.DELETE("/:id", userHandler.Delete, guard(adminOnly, byID))

	recordHandler := handler.NewMedicalRecordHandler(svc.MedicalRecords)

	// --- Patients ---
	patientHandler := handler.NewPatientHandler(svc.Patients)
	patients := apiGroup.Group("/patients", middleware.Audit(svc.Audit, "patient", "id"))
	patients.POST("", patientHandler.Create, guard(frontDesk))
	patients.GET("", patientHandler.List, guard(frontDesk))
	patients.GET("/:id", patientHandler.Get, guard(frontDesk, byID))
	patients.PATCH("/:id", patientHandler.Update, guard(frontDesk, byID))
	patients.GET("/:id/medical-records", recordHandler.ListByPatient, guard(clinicians, byID))

	// --- Appointments ---
	appointmentHandler := handler.NewAppointmentHandler(svc.Appointments)
	dateRange := middleware.RequireQueryParams("start_date", "end_date")
	appointments := apiGroup.Group("/appointments", middleware.Audit(svc.Audit, "appointment", "id"))
	appointments.POST("", appointmentHandler.Create, guard(frontDesk,
		middleware.RequireBodyFields("patient_id", "doctor_id", "appointment_date", "start_time", "end_time")))
	appointments.GET("", appointmentHandler.List, guard(anyRole, dateRange))
	appointments.GET("/doctor/:doctorId", appointmentHandler.ListByDoctor,
		guard(clinicians, middleware.UUIDParams("doctorId"), dateRange))
	appointments.GET("/:id", appointmentHandler.Get, guard(anyRole, byID))
	appointments.PATCH("/:id", appointmentHandler.Update, guard(frontDesk, byID))

	// --- Medical records ---
	records := apiGroup.Group("/medical-records", middleware.Audit(svc.Audit, "medical_record", "id"))
	records.POST("", recordHandler.Create, guard(clinicians,
		middleware.RequireBodyFields("patient_id", "doctor_id", "visit_date")))
	records.GET("/:id", recordHandler.Get, guard(clinicians, byID))
	records.PATCH("/:id", recordHandler.Update, guard(clinicians, byID))

	// --- Audit trail ---
	if svc.AuditLog != nil {
		auditHandler := handler.NewAuditHandler(svc.AuditLog)
		apiGroup.GET("/audit-events", auditHandler.List, guard(adminOnly))
	}

	e.RouteNotFound("/*", NotFoundHandler)

	return e
}
