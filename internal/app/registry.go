package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"go-payroll/internal/annualleave"
	"go-payroll/internal/attendance"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/holiday"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	"go-payroll/internal/settings"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	annualLeaveRepo := annualleave.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewService(db, attendanceRepo)
	employeeService := employee.NewService(db, employeeRepo)
	holidayService := holiday.NewService(db, holidayRepo)
	settingsService := settings.NewService(db, settingsRepo, rdb)
	annualLeaveService := annualleave.NewService(db, annualLeaveRepo, employeeService, settingsService)
	payrollService := payroll.NewService(
		db,
		payrollRepo,
		outboxRepo,
		employeeService,
		attendanceService,
		holidayService,
		settingsService,
	)

	// --- Handlers ---
	annualLeaveHandler := annualleave.NewHandler(annualLeaveService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	deductionHandler := deduction.NewHandler()
	employeeHandler := employee.NewHandler(employeeService)
	holidayHandler := holiday.NewHandler(holidayService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	settingsHandler := settings.NewHandler(settingsService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		annualleave.RegisterRoutes(api, annualLeaveHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		deduction.RegisterRoutes(api, deductionHandler)
		employee.RegisterRoutes(api, employeeHandler)
		holiday.RegisterRoutes(api, holidayHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		settings.RegisterRoutes(api, settingsHandler)
	}

	return nil
}
