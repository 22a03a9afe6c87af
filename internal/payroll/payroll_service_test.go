package payroll_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-payroll/internal/calculation"
	"go-payroll/internal/deduction"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
)

type fakePayrollRepository struct {
	withTxFn               func(tx *sql.Tx) payroll.Repository
	upsertFn               func(ctx context.Context, p *payroll.MonthlyPayroll) error
	findByPeriodFn         func(ctx context.Context, employeeID string, year, month int) (*payroll.MonthlyPayroll, error)
	findByIDFn             func(ctx context.Context, id string) (*payroll.MonthlyPayroll, error)
	findAllByPeriodFn      func(ctx context.Context, year, month, offset, limit int) ([]payroll.MonthlyPayroll, int64, error)
	markPayslipGeneratedFn func(ctx context.Context, id string, at time.Time) error
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakePayrollRepository) Upsert(ctx context.Context, p *payroll.MonthlyPayroll) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, p)
	}
	return nil
}

func (f *fakePayrollRepository) FindByPeriod(ctx context.Context, employeeID string, year, month int) (*payroll.MonthlyPayroll, error) {
	if f.findByPeriodFn != nil {
		return f.findByPeriodFn(ctx, employeeID, year, month)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindByID(ctx context.Context, id string) (*payroll.MonthlyPayroll, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePayrollRepository) FindAllByPeriod(ctx context.Context, year, month, offset, limit int) ([]payroll.MonthlyPayroll, int64, error) {
	if f.findAllByPeriodFn != nil {
		return f.findAllByPeriodFn(ctx, year, month, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakePayrollRepository) MarkPayslipGenerated(ctx context.Context, id string, at time.Time) error {
	if f.markPayslipGeneratedFn != nil {
		return f.markPayslipGeneratedFn(ctx, id, at)
	}
	return nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeEmployeeReader struct {
	payProfileOfFn func(ctx context.Context, employeeID string) (employee.PayProfile, error)
}

func (f *fakeEmployeeReader) PayProfileOf(ctx context.Context, employeeID string) (employee.PayProfile, error) {
	return f.payProfileOfFn(ctx, employeeID)
}

type fakeAttendanceReader struct {
	records []calculation.DayRecord
	err     error
}

func (f *fakeAttendanceReader) MonthRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]calculation.DayRecord, error) {
	return f.records, f.err
}

type fakeHolidayReader struct {
	holidays map[string]bool
}

func (f *fakeHolidayReader) MonthSet(ctx context.Context, year int, month time.Month) (map[string]bool, error) {
	return f.holidays, nil
}

type fakeSettingsReader struct {
	settings calculation.Settings
	rate     decimal.Decimal
}

func (f *fakeSettingsReader) Calculation(ctx context.Context) (calculation.Settings, error) {
	return f.settings, nil
}

func (f *fakeSettingsReader) IndustrialAccidentRate(ctx context.Context) (decimal.Decimal, error) {
	return f.rate, nil
}

type payrollServiceDeps struct {
	db         *sql.DB
	sqlMock    sqlmock.Sqlmock
	service    payroll.Service
	repo       *fakePayrollRepository
	outbox     *fakeOutboxRepository
	employees  *fakeEmployeeReader
	attendance *fakeAttendanceReader
	holidays   *fakeHolidayReader
	settings   *fakeSettingsReader
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	// Annual 26,880,000 over 224 rate hours gives a clean 10,000.00 hourly
	// and 166.6667 minute rate.
	repo := &fakePayrollRepository{}
	outbox := &fakeOutboxRepository{}
	employees := &fakeEmployeeReader{
		payProfileOfFn: func(ctx context.Context, employeeID string) (employee.PayProfile, error) {
			return employee.PayProfile{
				FullName:       "Kim Jiwoo",
				HireDate:       time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
				AnnualSalary:   decimal.NewFromInt(26880000),
				DependentCount: 1,
				Contract: calculation.ContractTerms{
					BasicSalary: decimal.NewFromInt(2000000),
					Bonus:       decimal.NewFromInt(100000),
				},
			}, nil
		},
	}
	attendance := &fakeAttendanceReader{}
	holidays := &fakeHolidayReader{holidays: map[string]bool{}}
	settings := &fakeSettingsReader{
		settings: calculation.DefaultSettings(),
		rate:     decimal.NewFromFloat(0.007),
	}

	svc := payroll.NewService(db, repo, outbox, employees, attendance, holidays, settings)

	return &payrollServiceDeps{
		db:         db,
		sqlMock:    sqlMock,
		service:    svc,
		repo:       repo,
		outbox:     outbox,
		employees:  employees,
		attendance: attendance,
		holidays:   holidays,
		settings:   settings,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestFinalize(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("success persists the computed period and enqueues the event", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		var stored *payroll.MonthlyPayroll
		deps.repo.upsertFn = func(ctx context.Context, p *payroll.MonthlyPayroll) error {
			stored = p
			return nil
		}
		var outboxEvent *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = &event
			return nil
		}

		resp, err := deps.service.Finalize(context.Background(), payroll.FinalizePayrollRequest{
			EmployeeID: employeeID,
			Year:       2026,
			Month:      2,
		})

		assert.NoError(t, err)
		if assert.NotNil(t, stored) {
			assert.Equal(t, employeeID, stored.EmployeeID.String())
			assert.Equal(t, 2026, stored.Year)
			assert.Equal(t, 2, stored.Month)
			assert.True(t, stored.TotalPayable.Equal(decimal.NewFromInt(2100000)),
				"total payable was %s", stored.TotalPayable)

			expected := deduction.Compute(stored.TotalPayable, decimal.NewFromFloat(0.007), 1)
			assert.True(t, stored.NetPay.Equal(expected.NetPay),
				"net pay was %s, want %s", stored.NetPay, expected.NetPay)

			// employer-side contributions are persisted in their own columns
			assert.True(t, stored.PensionEmployer.Equal(expected.PensionEmployer),
				"employer pension was %s, want %s", stored.PensionEmployer, expected.PensionEmployer)
			assert.True(t, stored.HealthEmployer.Equal(expected.HealthEmployer))
			assert.True(t, stored.LongTermCareEmployer.Equal(expected.LongTermCareEmployer))
			assert.True(t, stored.EmploymentEmployer.Equal(expected.EmploymentEmployer))
			assert.True(t, stored.EmployerTotal.Equal(expected.EmployerTotal))
		}

		if assert.NotNil(t, outboxEvent) {
			assert.Equal(t, events.PayrollFinalizedTopic, outboxEvent.Topic)
			assert.Equal(t, kafka.OutboxStatusPending, outboxEvent.Status)
			assert.Equal(t, stored.ID.String(), outboxEvent.AggregateID)

			var event events.PayrollFinalizedEvent
			assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &event))
			assert.Equal(t, employeeID, event.EmployeeID)
			assert.Equal(t, stored.NetPay.String(), event.NetPay)
		}

		assert.Equal(t, "Kim Jiwoo", resp.EmployeeName)
		assert.True(t, resp.Pay.TotalPayable.Equal(decimal.NewFromInt(2100000)))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success absence week charges shortfall plus penalty", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		// One absent Wednesday: 480 shortfall minutes at 166.6667/min plus
		// one forfeited weekly rest day at 80,000.
		deps.attendance.records = []calculation.DayRecord{
			{
				Date:   time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
				Status: calculation.StatusAbsence,
			},
		}

		var stored *payroll.MonthlyPayroll
		deps.repo.upsertFn = func(ctx context.Context, p *payroll.MonthlyPayroll) error {
			stored = p
			return nil
		}

		_, err := deps.service.Finalize(context.Background(), payroll.FinalizePayrollRequest{
			EmployeeID: employeeID,
			Year:       2026,
			Month:      2,
		})

		assert.NoError(t, err)
		if assert.NotNil(t, stored) {
			assert.Equal(t, 480, stored.ShortfallMinutes)
			assert.True(t, stored.ShortfallAmount.Equal(decimal.NewFromInt(80000)),
				"shortfall was %s", stored.ShortfallAmount)
			assert.True(t, stored.WeeklyAbsencePenalty.Equal(decimal.NewFromInt(80000)),
				"penalty was %s", stored.WeeklyAbsencePenalty)
			assert.True(t, stored.FinalBasicSalary.Equal(decimal.NewFromInt(1840000)),
				"basic was %s", stored.FinalBasicSalary)
			assert.True(t, stored.TotalPayable.Equal(decimal.NewFromInt(1940000)),
				"total payable was %s", stored.TotalPayable)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid ad hoc bonus aborts before any load", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		bad := "-500"
		_, err := deps.service.Finalize(context.Background(), payroll.FinalizePayrollRequest{
			EmployeeID: employeeID,
			Year:       2026,
			Month:      2,
			AdHocBonus: &bad,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidAdHocBonus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid employee id", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Finalize(context.Background(), payroll.FinalizePayrollRequest{
			EmployeeID: "not-a-uuid",
			Year:       2026,
			Month:      2,
		})

		assert.ErrorIs(t, err, payrollerrors.ErrInvalidEmployeeID)
	})
}

func TestGetByPeriod(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("success maps the stored row", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByPeriodFn = func(ctx context.Context, id string, year, month int) (*payroll.MonthlyPayroll, error) {
			return &payroll.MonthlyPayroll{
				ID:           uuid.New(),
				EmployeeID:   uuid.MustParse(id),
				Year:         year,
				Month:        month,
				TotalPayable: decimal.NewFromInt(2100000),
				NetPay:       decimal.NewFromInt(1900000),
				Employee:     &payroll.PayrollEmployee{FullName: "Kim Jiwoo"},
			}, nil
		}

		resp, err := deps.service.GetByPeriod(context.Background(), employeeID, 2026, 2)

		assert.NoError(t, err)
		assert.Equal(t, "Kim Jiwoo", resp.EmployeeName)
		assert.True(t, resp.Pay.TotalPayable.Equal(decimal.NewFromInt(2100000)))
		assert.True(t, resp.Deductions.NetPay.Equal(decimal.NewFromInt(1900000)))
	})

	t.Run("negative not found", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByPeriodFn = func(ctx context.Context, id string, year, month int) (*payroll.MonthlyPayroll, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByPeriod(context.Background(), employeeID, 2026, 2)
		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}

func TestGeneratePayslip(t *testing.T) {
	t.Run("success renders a pdf and stamps the row", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		payrollID := uuid.NewString()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*payroll.MonthlyPayroll, error) {
			return &payroll.MonthlyPayroll{
				ID:           uuid.MustParse(id),
				EmployeeID:   uuid.New(),
				Year:         2026,
				Month:        2,
				TotalPayable: decimal.NewFromInt(2100000),
				NetPay:       decimal.NewFromInt(1900000),
				Employee:     &payroll.PayrollEmployee{FullName: "Kim Jiwoo"},
			}, nil
		}

		var stamped string
		deps.repo.markPayslipGeneratedFn = func(ctx context.Context, id string, at time.Time) error {
			stamped = id
			return nil
		}

		pdf, err := deps.service.GeneratePayslip(context.Background(), payrollID)

		assert.NoError(t, err)
		assert.Equal(t, payrollID, stamped)
		assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
		assert.True(t, bytes.Contains(pdf, []byte("Payslip 2026-02")))
		assert.True(t, bytes.Contains(pdf, []byte("Kim Jiwoo")))
	})

	t.Run("negative unknown payroll id", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GeneratePayslip(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
	})
}
