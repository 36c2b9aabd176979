package main

import (
	"fmt"
	"net/http"

	"github.com/tempohr/tempo-backend-go/internal/config"
	appHTTP "github.com/tempohr/tempo-backend-go/internal/handler/http"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
	"github.com/tempohr/tempo-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tempohr/tempo-backend-go/internal/service/attendance"
	authService "github.com/tempohr/tempo-backend-go/internal/service/auth"
	authorizationService "github.com/tempohr/tempo-backend-go/internal/service/authorization"
	employeeService "github.com/tempohr/tempo-backend-go/internal/service/employee"
	holidayService "github.com/tempohr/tempo-backend-go/internal/service/holiday"
	leaveService "github.com/tempohr/tempo-backend-go/internal/service/leave"
	overtimeService "github.com/tempohr/tempo-backend-go/internal/service/overtime"
	payrollService "github.com/tempohr/tempo-backend-go/internal/service/payroll"
	reportService "github.com/tempohr/tempo-backend-go/internal/service/report"
	scheduleService "github.com/tempohr/tempo-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	authorizationRepo := postgresql.NewAuthorizationRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	compensationRepo := postgresql.NewCompensationRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(db, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, workScheduleRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		workScheduleRepo,
		authorizationRepo,
		holidayRepo,
	)
	authorizationSvc := authorizationService.NewAuthorizationService(db, authorizationRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, employeeRepo)
	overtimeSvc := overtimeService.NewCompensationService(db, compensationRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, workScheduleRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	authorizationHandler := appHTTP.NewAuthorizationHandler(authorizationSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		scheduleHandler,
		attendanceHandler,
		authorizationHandler,
		leaveHandler,
		overtimeHandler,
		payrollHandler,
		holidayHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
