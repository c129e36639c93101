package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	logger *slog.Logger,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	rewardHandler RewardHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.ListActive)
			r.Get("/{id}", employeeHandler.Get)

			r.Get("/{id}/attendance/{year}/{month}", attendanceHandler.GetMonthlyCalculation)

			r.Get("/{id}/leaves/summary/{year}/{month}", leaveHandler.GetMonthlySummary)
			r.Get("/{id}/leaves/balance/{year}", leaveHandler.GetBalance)

			r.Get("/{id}/rewards/{year}/{month}", rewardHandler.GetMonthlySummary)

			r.Get("/{id}/salary/{year}/{month}", payrollHandler.EstimateSalary)
			r.Post("/{id}/salary/{year}/{month}/report", payrollHandler.GenerateReport)
			r.Get("/{id}/salary/{year}/{month}/report", payrollHandler.GetReport)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Post("/", leaveHandler.Create)
			r.Post("/{id}/approve", leaveHandler.Approve)
			r.Post("/{id}/reject", leaveHandler.Reject)
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Post("/", rewardHandler.Grant)
			r.Post("/{id}/revoke", rewardHandler.Revoke)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Post("/run/{year}/{month}", payrollHandler.RunPayroll)
			r.Get("/reports/{year}/{month}", payrollHandler.ListReports)
		})
	})

	return r
}
