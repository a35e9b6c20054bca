package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/nimbushr/ems-backend-go/internal/config"
	"github.com/nimbushr/ems-backend-go/internal/fixtures"
	appHTTP "github.com/nimbushr/ems-backend-go/internal/handler/http"
	"github.com/nimbushr/ems-backend-go/internal/pkg/database"
	"github.com/nimbushr/ems-backend-go/internal/pkg/jwt"
	"github.com/nimbushr/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/nimbushr/ems-backend-go/internal/service/attendance"
	authService "github.com/nimbushr/ems-backend-go/internal/service/auth"
	dashboardService "github.com/nimbushr/ems-backend-go/internal/service/dashboard"
	employeeService "github.com/nimbushr/ems-backend-go/internal/service/employee"
	holidayService "github.com/nimbushr/ems-backend-go/internal/service/holiday"
	leaveService "github.com/nimbushr/ems-backend-go/internal/service/leave"
	projectService "github.com/nimbushr/ems-backend-go/internal/service/project"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn, "migrations"); err != nil {
		log.Fatal("Error applying migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	membershipRepo := postgresql.NewMembershipRepository(db)
	timeLogRepo := postgresql.NewTimeLogRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	if cfg.App.Env == "development" {
		err := fixtures.SeedDemoData(context.Background(), db, fixtures.Repositories{
			Employees:   employeeRepo,
			Holidays:    holidayRepo,
			Projects:    projectRepo,
			Memberships: membershipRepo,
		})
		if err != nil {
			log.Fatal("Error seeding demo data: ", err)
		}
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService.NewAuthService(employeeRepo, jwtService)),
		Employee:   appHTTP.NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		Attendance: appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(attendanceRepo)),
		Leave:      appHTTP.NewLeaveHandler(leaveService.NewLeaveService(leaveRepo, employeeRepo)),
		Holiday:    appHTTP.NewHolidayHandler(holidayService.NewHolidayService(holidayRepo)),
		Project:    appHTTP.NewProjectHandler(projectService.NewProjectService(projectRepo, membershipRepo, timeLogRepo, employeeRepo)),
		Dashboard: appHTTP.NewDashboardHandler(dashboardService.NewDashboardService(
			dashboardRepo,
			cfg.Dashboard.LeaveLookaheadDays,
			cfg.Dashboard.HolidayLookaheadDays,
		)),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
