package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	"github.com/leo-edge/hr-payroll-backend-go/internal/handler/http/middleware"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	salaryHandler SalaryHandler,
	dailySalaryHandler DailySalaryHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api", func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Route("/add-employee", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/{employee_id}", employeeHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", employeeHandler.Create)
				r.Patch("/{employee_id}", employeeHandler.Update)
				r.Delete("/{employee_id}", employeeHandler.Delete)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/today", attendanceHandler.GetToday)
			r.Get("/date/{date}", attendanceHandler.GetByDate)
			r.Get("/range/{employee_id}", attendanceHandler.GetByEmployeeRange)
			r.Get("/{employee_id}", attendanceHandler.GetByEmployee)
			r.Get("/{employee_id}/{date}", attendanceHandler.GetByEmployeeAndDate)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", attendanceHandler.Record)
			})
		})

		r.Route("/salary", func(r chi.Router) {
			r.Get("/history/{employee_id}", salaryHandler.GetHistory)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/apply", salaryHandler.ApplyAction)
				r.Post("/mark-paid", salaryHandler.MarkPaid)
			})
		})

		r.Route("/employee-salary", func(r chi.Router) {
			r.Post("/", dailySalaryHandler.Upsert)
			r.Get("/", dailySalaryHandler.Get)
			r.Get("/events", dailySalaryHandler.Events)
			r.Get("/events/summary", dailySalaryHandler.EventsSummary)
			r.Patch("/{employee_id}/{date}", dailySalaryHandler.UpdateAbsolute)
			r.Delete("/{employee_id}/{date}", dailySalaryHandler.Delete)
		})
	})

	return r
}
