package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/paydesk/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Deduction  DeductionHandler
	Savings    SavingsHandler
	Bonus      BonusHandler
	Payroll    PayrollHandler
	Schedule   ScheduleHandler
}

func NewRouter(jwtService jwt.Service, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paydesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
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
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Only an admin can mint accounts; the first admin is seeded
			// from configuration at startup.
			r.With(middleware.AdminOnly).Post("/auth/register", h.Auth.Register)

			r.Route("/employees", func(r chi.Router) {
				r.Post("/", h.Employee.Create)
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Patch("/{id}", h.Employee.Update)
				r.Patch("/{id}/status", h.Employee.SetStatus)
				r.Post("/{id}/salary-revisions", h.Employee.AddSalaryRevision)
				r.Get("/{id}/salary-revisions", h.Employee.ListSalaryRevisions)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.AdminOnly).Post("/", h.Attendance.Upsert)
				r.Get("/", h.Attendance.ListByMonth)
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Post("/", h.Deduction.Create)
				r.Get("/", h.Deduction.List)
				r.Patch("/{id}", h.Deduction.Update)
				r.Delete("/{id}", h.Deduction.Delete)
			})

			r.Route("/debts", func(r chi.Router) {
				r.Post("/payments", h.Deduction.CreateDebtPayment)
				r.Get("/payments", h.Deduction.ListDebtPayments)
				r.Get("/summary", h.Deduction.GetDebtSummary)
			})

			r.Route("/savings", func(r chi.Router) {
				r.Get("/", h.Savings.List)
				r.Get("/{employeeId}", h.Savings.Get)
				r.Put("/{employeeId}", h.Savings.UpdateContribution)
				r.Post("/{employeeId}/payout", h.Savings.Payout)
			})

			r.Route("/bonuses", func(r chi.Router) {
				r.Post("/", h.Bonus.Create)
				r.Get("/", h.Bonus.ListByMonth)
				r.Delete("/{id}", h.Bonus.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/records", h.Payroll.ListRecords)
				r.Get("/holds", h.Deduction.ListHolds)
				r.Get("/schedules", h.Schedule.List)

				// Settlement mutations are admin-only.
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/generate", h.Payroll.Generate)
					r.Post("/generate/employee", h.Payroll.GenerateForEmployee)
					r.Post("/undo", h.Payroll.Undo)
					r.Post("/recalculate", h.Payroll.Recalculate)
					r.Post("/holds/{id}/clear", h.Deduction.ClearHold)
					r.Put("/schedules", h.Schedule.Upsert)
				})
			})
		})
	})

	return r
}
