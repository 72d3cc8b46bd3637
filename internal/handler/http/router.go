package http

import (
	"log/slog"

	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	LogLevel       slog.Level
}

type Handlers struct {
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Audit      AuditHandler
	Report     ReportHandler
	Holiday    HolidayHandler
	User       UserHandler
}

func NewRouter(JWTService jwt.Service, h Handlers, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	allowedOrigins := opts.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceCreate))
					r.Post("/clock-in", h.Attendance.ClockIn)
					r.Post("/clock-out", h.Attendance.ClockOut)
					r.Post("/break/start", h.Attendance.StartBreak)
					r.Post("/break/end", h.Attendance.EndBreak)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
					r.Get("/today", h.Attendance.GetToday)
					r.Get("/history", h.Attendance.GetHistory)
				})

				// HR and Admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAttendanceViewAll))
					r.Get("/all", h.Attendance.ListAll)
					r.Get("/today/all", h.Attendance.ListToday)
				})

				r.With(middleware.RequirePermission(user.PermissionAttendanceBackfill)).
					Post("/backfill", h.Attendance.Backfill)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionLeaveCreate)).Post("/", h.Leave.CreateRequest)
				r.With(middleware.RequirePermission(user.PermissionLeaveViewOwn)).Get("/my", h.Leave.GetMyRequests)

				// HR and Admin
				r.With(middleware.RequirePermission(user.PermissionLeaveViewAll)).Get("/", h.Leave.ListRequests)
				r.With(middleware.RequirePermission(user.PermissionLeaveApprove)).Put("/{id}/status", h.Leave.UpdateStatus)
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionHolidayView)).Get("/", h.Holiday.List)
				r.With(middleware.RequirePermission(user.PermissionHolidayCreate)).Post("/", h.Holiday.Create)

				// Admin only
				r.With(middleware.RequirePermission(user.PermissionHolidayDelete)).Delete("/{id}", h.Holiday.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionUserView))
					r.Get("/", h.User.List)
					r.Get("/role/{role}", h.User.ListByRole)
				})

				// HR and Admin
				r.With(middleware.RequirePermission(user.PermissionUserStats)).
					Get("/stats/employees", h.User.EmployeeStats)
			})

			r.With(middleware.RequirePermission(user.PermissionReportsView)).
				Get("/reports/attendance", h.Report.GetAttendanceReport)

			// Admin only
			r.With(middleware.RequirePermission(user.PermissionAuditView)).
				Get("/audit-logs", h.Audit.List)
		})
	})

	return r
}
