package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/chraietrayen/PFE/internal/config"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	appHTTP "github.com/chraietrayen/PFE/internal/handler/http"
	"github.com/chraietrayen/PFE/internal/pkg/database"
	"github.com/chraietrayen/PFE/internal/repository/postgresql"
	attendanceService "github.com/chraietrayen/PFE/internal/service/attendance"
	employeeService "github.com/chraietrayen/PFE/internal/service/employee"
	leaveService "github.com/chraietrayen/PFE/internal/service/leave"
	payrollService "github.com/chraietrayen/PFE/internal/service/payroll"
	rewardService "github.com/chraietrayen/PFE/internal/service/reward"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "pfe-payroll"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	policy := calendar.NewPolicy(
		cfg.Calendar.StandardHoursPerDay,
		cfg.Calendar.OvertimeMultiplier,
		cfg.Calendar.WeekendDays,
		cfg.Calendar.PublicHolidays,
		cfg.Calendar.AnnualLeaveAllowance,
	)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	rewardRepo := postgresql.NewRewardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	materializer := attendanceService.NewSessionMaterializer(policy, sessionRepo)
	txManager := postgresql.NewTxManager(db)

	empService := employeeService.NewEmployeeService(employeeRepo)
	attService := attendanceService.NewAttendanceService(policy, sessionRepo, employeeRepo)
	lvService := leaveService.NewLeaveService(policy, txManager, leaveRepo, employeeRepo, materializer)
	rwService := rewardService.NewRewardService(policy, txManager, rewardRepo, employeeRepo, materializer)
	prService := payrollService.NewPayrollService(logger, policy, employeeRepo, reportRepo, attService, lvService, rwService)

	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attService)
	leaveHandler := appHTTP.NewLeaveHandler(lvService)
	rewardHandler := appHTTP.NewRewardHandler(rwService)
	payrollHandler := appHTTP.NewPayrollHandler(prService, reportRepo)

	router := appHTTP.NewRouter(
		logger,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		rewardHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}
