package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/config"
	payrollDomain "github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/paydesk/payroll-backend-go/internal/handler/http"
	"github.com/paydesk/payroll-backend-go/internal/pkg/cron"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/paydesk/payroll-backend-go/internal/service/attendance"
	authService "github.com/paydesk/payroll-backend-go/internal/service/auth"
	bonusService "github.com/paydesk/payroll-backend-go/internal/service/bonus"
	deductionService "github.com/paydesk/payroll-backend-go/internal/service/deduction"
	employeeService "github.com/paydesk/payroll-backend-go/internal/service/employee"
	payrollService "github.com/paydesk/payroll-backend-go/internal/service/payroll"
	savingsService "github.com/paydesk/payroll-backend-go/internal/service/savings"
	scheduleService "github.com/paydesk/payroll-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	savingsRepo := postgresql.NewSavingsRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	if err := authSvc.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		slog.Error("Failed to seed admin account", "error", err)
		os.Exit(1)
	}
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	deductionSvc := deductionService.NewDeductionService(deductionRepo, employeeRepo)
	savingsSvc := savingsService.NewSavingsService(savingsRepo, employeeRepo)
	bonusSvc := bonusService.NewBonusService(bonusRepo, employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollDomain.Config{
			RoundDecimals:       cfg.Payroll.RoundDecimals,
			FlatDeductionAmount: cfg.Payroll.FlatDeductionAmount,
			HoldingDays:         cfg.Payroll.HoldingDays,
		},
		payrollRepo,
		employeeRepo,
		attendanceRepo,
		deductionRepo,
		savingsRepo,
		bonusRepo,
	)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Deduction:  appHTTP.NewDeductionHandler(deductionSvc),
		Savings:    appHTTP.NewSavingsHandler(savingsSvc),
		Bonus:      appHTTP.NewBonusHandler(bonusSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
	})

	scheduler := cron.NewScheduler(cfg.Scheduler.Tick, scheduleRepo, payrollSvc)
	if cfg.Scheduler.Enabled {
		scheduler.Start()
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}

	if cfg.Scheduler.Enabled {
		scheduler.Stop()
	}
}
