package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-payroll/internal/attendance"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/holiday"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payroll"
	"go-payroll/internal/settings"
	"go-payroll/internal/shared/connection"
)

// RunConsumer mendengarkan event payroll finalized dan menghasilkan payslip.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	attendanceService := attendance.NewService(sqlDB, attendance.NewRepository(gormDB))
	employeeService := employee.NewService(sqlDB, employee.NewRepository(gormDB))
	holidayService := holiday.NewService(sqlDB, holiday.NewRepository(gormDB))
	settingsService := settings.NewService(sqlDB, settings.NewRepository(gormDB), redisClient)
	payrollService := payroll.NewService(
		sqlDB,
		payroll.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		employeeService,
		attendanceService,
		holidayService,
		settingsService,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayrollFinalizedTopic,
		GroupID:        "go-payroll-payslip",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayrollFinalized(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
