package consumer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"go-payroll/internal/events"
	"go-payroll/internal/payroll"
)

// ConsumePayrollFinalized renders a payslip PDF for every finalized payroll
// and drops it in PAYSLIP_STORAGE_DIR. Failed messages are not committed so
// the next poll retries them.
func ConsumePayrollFinalized(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_payslip")
	log.Info("payroll payslip consumer started")

	storageDir := os.Getenv("PAYSLIP_STORAGE_DIR")
	if storageDir == "" {
		storageDir = "./payslips"
	}

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll payslip consumer stopped")
				return
			}
			log.Error("fetch payroll finalized message failed", zap.Error(err))
			continue
		}

		var event events.PayrollFinalizedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll finalized event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		pdf, err := payrollService.GeneratePayslip(ctx, event.PayrollID)
		if err != nil {
			log.Error("generate payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("employee_id", event.EmployeeID),
				zap.Error(err),
			)
			continue
		}

		if err := writePayslip(storageDir, event.PayrollID, pdf); err != nil {
			log.Error("store payslip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll finalized message failed", zap.Error(err))
			continue
		}

		log.Info("payslip stored",
			zap.String("payroll_id", event.PayrollID),
			zap.String("employee_id", event.EmployeeID),
			zap.Int("year", event.Year),
			zap.Int("month", event.Month),
		)
	}
}

func writePayslip(dir, payrollID string, pdf []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "payslip_"+payrollID+".pdf"), pdf, 0o644)
}
