package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-payroll/internal/calculation"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"
)

// The service reads collaborating features through narrow interfaces so
// tests can swap them for fakes.
type EmployeeReader interface {
	PayProfileOf(ctx context.Context, employeeID string) (employee.PayProfile, error)
}

type AttendanceReader interface {
	MonthRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]calculation.DayRecord, error)
}

type HolidayReader interface {
	MonthSet(ctx context.Context, year int, month time.Month) (map[string]bool, error)
}

type SettingsReader interface {
	Calculation(ctx context.Context) (calculation.Settings, error)
	IndustrialAccidentRate(ctx context.Context) (decimal.Decimal, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Finalize(ctx context.Context, req FinalizePayrollRequest) (PayrollResponse, error)
	GetByPeriod(ctx context.Context, employeeID string, year, month int) (PayrollResponse, error)
	GetAllByPeriod(ctx context.Context, year, month, page, limit int) ([]PayrollResponse, int64, error)
	GeneratePayslip(ctx context.Context, payrollID string) ([]byte, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outbox     kafka.OutboxRepository
	employees  EmployeeReader
	attendance AttendanceReader
	holidays   HolidayReader
	settings   SettingsReader
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	employees EmployeeReader,
	attendance AttendanceReader,
	holidays HolidayReader,
	settings SettingsReader,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		outbox:     outbox,
		employees:  employees,
		attendance: attendance,
		holidays:   holidays,
		settings:   settings,
		logger:     l,
	}
}

// Finalize loads everything the engines need, computes the month, and
// upserts the result together with its outbox event in one transaction.
func (s *service) Finalize(ctx context.Context, req FinalizePayrollRequest) (PayrollResponse, error) {
	s.logger.Debug("finalize payroll requested",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
	)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1900 || req.Year > 9999 {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	salaryPct, err := parseOptionalPercent(req.SalaryPercentage)
	if err != nil {
		return PayrollResponse{}, err
	}
	adHocBonus, err := parseOptionalBonus(req.AdHocBonus)
	if err != nil {
		return PayrollResponse{}, err
	}

	profile, err := s.employees.PayProfileOf(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("finalize payroll employee lookup failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	records, err := s.attendance.MonthRecords(ctx, req.EmployeeID, req.Year, time.Month(req.Month))
	if err != nil {
		return PayrollResponse{}, err
	}
	holidaySet, err := s.holidays.MonthSet(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		return PayrollResponse{}, err
	}
	cfg, err := s.settings.Calculation(ctx)
	if err != nil {
		return PayrollResponse{}, err
	}
	accidentRate, err := s.settings.IndustrialAccidentRate(ctx)
	if err != nil {
		return PayrollResponse{}, err
	}

	result, err := calculation.ComputeMonthlyPay(calculation.Input{
		HireDate:         profile.HireDate,
		AnnualSalary:     profile.AnnualSalary,
		Contract:         profile.Contract,
		Year:             req.Year,
		Month:            time.Month(req.Month),
		Records:          records,
		Holidays:         holidaySet,
		Settings:         cfg,
		SalaryPercentage: salaryPct,
		AdHocBonus:       adHocBonus,
		AdHocBonusApply:  req.AdHocBonusApply,
	})
	if err != nil {
		s.logger.Warn("finalize payroll computation failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	deductions := deduction.Compute(result.TotalPayable, accidentRate, profile.DependentCount)

	row := buildRow(employeeUUID, req.Year, req.Month, result, deductions)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("finalize payroll begin tx failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, row); err != nil {
		s.logger.Error("finalize payroll persist failed", zap.Error(err))
		return PayrollResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueFinalizedEvent(ctx, tx, row); err != nil {
			s.logger.Error("finalize payroll outbox enqueue failed", zap.Error(err))
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("finalize payroll commit failed", zap.Error(err))
		return PayrollResponse{}, err
	}
	s.logger.Info("finalize payroll success",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.String("total_payable", result.TotalPayable.String()),
		zap.String("net_pay", deductions.NetPay.String()),
	)

	resp := mapToResponse(row)
	resp.EmployeeName = profile.FullName
	return resp, nil
}

func (s *service) enqueueFinalizedEvent(ctx context.Context, tx *sql.Tx, row *MonthlyPayroll) error {
	event := events.PayrollFinalizedEvent{
		EventType:  "payroll_finalized",
		PayrollID:  row.ID.String(),
		EmployeeID: row.EmployeeID.String(),
		Year:       row.Year,
		Month:      row.Month,
		NetPay:     row.NetPay.String(),
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll",
		AggregateID:   row.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollFinalizedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

func (s *service) GetByPeriod(ctx context.Context, employeeID string, year, month int) (PayrollResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if month < 1 || month > 12 {
		return PayrollResponse{}, payrollerrors.ErrInvalidPeriod
	}

	p, err := s.repo.FindByPeriod(ctx, employeeID, year, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrPayrollNotFound
		}
		return PayrollResponse{}, err
	}
	return mapToResponse(p), nil
}

func (s *service) GetAllByPeriod(ctx context.Context, year, month, page, limit int) ([]PayrollResponse, int64, error) {
	if month < 1 || month > 12 {
		return nil, 0, payrollerrors.ErrInvalidPeriod
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	payrolls, total, err := s.repo.FindAllByPeriod(ctx, year, month, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]PayrollResponse, 0, len(payrolls))
	for i := range payrolls {
		resp = append(resp, mapToResponse(&payrolls[i]))
	}
	return resp, total, nil
}

func buildRow(employeeUUID uuid.UUID, year, month int, result calculation.Result, deductions deduction.Result) *MonthlyPayroll {
	return &MonthlyPayroll{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Year:       year,
		Month:      month,

		ProrationRatio:         result.ProrationRatio,
		AttendancePaymentRatio: result.AttendancePaymentRatio,

		ShortfallMinutes:     result.ShortfallMinutes,
		ShortfallAmount:      result.ShortfallAmount,
		WeeklyAbsencePenalty: result.WeeklyAbsencePenalty,

		OvertimeMinutes: result.OvertimeMinutes,
		HolidayMinutes:  result.HolidayMinutes,
		NightMinutes:    result.NightMinutes,

		OvertimePremium: result.OvertimePremium,
		NightPremium:    result.NightPremium,
		HolidayPremium:  result.HolidayPremium,

		FinalBasicSalary:      result.FinalBasicSalary,
		FinalFixedOvertimePay: result.FinalFixedOvertimePay,
		FinalBonus:            result.FinalBonus,
		FinalOtherAllowance:   result.FinalOtherAllowance,
		FinalMealAllowance:    result.FinalMealAllowance,
		FinalVehicleAllowance: result.FinalVehicleAllowance,
		FinalRnDAllowance:     result.FinalRnDAllowance,
		FinalChildcareSubsidy: result.FinalChildcareSubsidy,
		FinalPremiumPay:       result.FinalPremiumPay,
		TotalPayable:          result.TotalPayable,

		PensionEmployee:      deductions.PensionEmployee,
		HealthEmployee:       deductions.HealthEmployee,
		LongTermCareEmployee: deductions.LongTermCareEmployee,
		EmploymentEmployee:   deductions.EmploymentEmployee,
		IncomeTax:            deductions.IncomeTax,
		LocalIncomeTax:       deductions.LocalIncomeTax,
		EmployeeTotal:        deductions.EmployeeTotal,
		PensionEmployer:      deductions.PensionEmployer,
		HealthEmployer:       deductions.HealthEmployer,
		LongTermCareEmployer: deductions.LongTermCareEmployer,
		EmploymentEmployer:   deductions.EmploymentEmployer,
		IndustrialAccident:   deductions.IndustrialAccident,
		EmployerTotal:        deductions.EmployerTotal,
		NetPay:               deductions.NetPay,
	}
}

func mapToResponse(p *MonthlyPayroll) PayrollResponse {
	resp := PayrollResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Year:       p.Year,
		Month:      p.Month,
		Pay: calculation.Result{
			ProrationRatio:         p.ProrationRatio,
			AttendancePaymentRatio: p.AttendancePaymentRatio,
			ShortfallMinutes:       p.ShortfallMinutes,
			ShortfallAmount:        p.ShortfallAmount,
			WeeklyAbsencePenalty:   p.WeeklyAbsencePenalty,
			OvertimeMinutes:        p.OvertimeMinutes,
			HolidayMinutes:         p.HolidayMinutes,
			NightMinutes:           p.NightMinutes,
			OvertimePremium:        p.OvertimePremium,
			NightPremium:           p.NightPremium,
			HolidayPremium:         p.HolidayPremium,
			FinalBasicSalary:       p.FinalBasicSalary,
			FinalFixedOvertimePay:  p.FinalFixedOvertimePay,
			FinalBonus:             p.FinalBonus,
			FinalOtherAllowance:    p.FinalOtherAllowance,
			FinalMealAllowance:     p.FinalMealAllowance,
			FinalVehicleAllowance:  p.FinalVehicleAllowance,
			FinalRnDAllowance:      p.FinalRnDAllowance,
			FinalChildcareSubsidy:  p.FinalChildcareSubsidy,
			FinalPremiumPay:        p.FinalPremiumPay,
			TotalPayable:           p.TotalPayable,
		},
		Deductions: deduction.Result{
			PensionEmployee:      p.PensionEmployee,
			HealthEmployee:       p.HealthEmployee,
			LongTermCareEmployee: p.LongTermCareEmployee,
			EmploymentEmployee:   p.EmploymentEmployee,
			IncomeTax:            p.IncomeTax,
			LocalIncomeTax:       p.LocalIncomeTax,
			EmployeeTotal:        p.EmployeeTotal,
			PensionEmployer:      p.PensionEmployer,
			HealthEmployer:       p.HealthEmployer,
			LongTermCareEmployer: p.LongTermCareEmployer,
			EmploymentEmployer:   p.EmploymentEmployer,
			IndustrialAccident:   p.IndustrialAccident,
			EmployerTotal:        p.EmployerTotal,
			NetPay:               p.NetPay,
		},
	}
	if p.Employee != nil {
		resp.EmployeeName = p.Employee.FullName
	}
	return resp
}

func parseOptionalPercent(raw *string) (*decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil || v.IsNegative() {
		return nil, payrollerrors.ErrInvalidSalaryPercentage
	}
	return &v, nil
}

func parseOptionalBonus(raw *string) (decimal.Decimal, error) {
	if raw == nil || *raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero, payrollerrors.ErrInvalidAdHocBonus
	}
	return v, nil
}
