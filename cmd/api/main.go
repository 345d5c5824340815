package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	appHTTP "github.com/leo-edge/hr-payroll-backend-go/internal/handler/http"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/database"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/email"
	"github.com/leo-edge/hr-payroll-backend-go/internal/pkg/jwt"
	"github.com/leo-edge/hr-payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/leo-edge/hr-payroll-backend-go/internal/service/attendance"
	dailySalaryService "github.com/leo-edge/hr-payroll-backend-go/internal/service/dailysalary"
	employeeService "github.com/leo-edge/hr-payroll-backend-go/internal/service/employee"
	salaryService "github.com/leo-edge/hr-payroll-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	cycleLedgerRepo := postgresql.NewCycleLedgerRepository(db)
	dailyLedgerRepo := postgresql.NewDailyLedgerRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	empService := employeeService.NewEmployeeService(employeeRepo, cfg.Payroll)
	attService := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, cycleLedgerRepo, cfg.Payroll)
	salService := salaryService.NewSalaryService(db, cycleLedgerRepo, employeeRepo, emailService, cfg.Payroll)
	dailyService := dailySalaryService.NewDailySalaryService(db, dailyLedgerRepo, employeeRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attService)
	salaryHandler := appHTTP.NewSalaryHandler(salService)
	dailySalaryHandler := appHTTP.NewDailySalaryHandler(dailyService)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		employeeHandler,
		attendanceHandler,
		salaryHandler,
		dailySalaryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
