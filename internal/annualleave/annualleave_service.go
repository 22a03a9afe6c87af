package annualleave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	annualleaveerrors "go-payroll/internal/annualleave/errors"
)

// EmployeeDirectory is the slice of the employee feature this package needs.
type EmployeeDirectory interface {
	HireDateOf(ctx context.Context, employeeID string) (time.Time, error)
}

// PolicyProvider yields the configured annual leave basis.
type PolicyProvider interface {
	LeaveBasis(ctx context.Context) (string, error)
}

//go:generate mockgen -source=annualleave_service.go -destination=mock/annualleave_service_mock.go -package=mock
type Service interface {
	Accrue(ctx context.Context, req AccrueRequest) (BalanceResponse, error)
	Adjust(ctx context.Context, req AdjustRequest) (BalanceResponse, error)
	Override(ctx context.Context, req OverrideRequest) (BalanceResponse, error)
	RecordUsage(ctx context.Context, req RecordUsageRequest) ([]BalanceResponse, error)
	GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
	ListUsage(ctx context.Context, employeeID string, year int) ([]UsageResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	policy    PolicyProvider
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeDirectory, policy PolicyProvider, logger ...*zap.Logger) Service {
	l := zap.L().Named("annualleave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("annualleave.service")
	}
	return &service{db: db, repo: repo, employees: employees, policy: policy, logger: l}
}

func (s *service) Accrue(ctx context.Context, req AccrueRequest) (BalanceResponse, error) {
	s.logger.Debug("accrue requested",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
	)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, annualleaveerrors.ErrInvalidEmployeeID
	}

	hireDate, err := s.employees.HireDateOf(ctx, req.EmployeeID)
	if err != nil {
		s.logger.Warn("accrue hire date lookup failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	basis, err := s.policy.LeaveBasis(ctx)
	if err != nil {
		return BalanceResponse{}, err
	}

	generated, err := Entitlement(basis, hireDate, req.Year)
	if err != nil {
		s.logger.Error("accrue entitlement failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("accrue begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	balance := &LeaveBalance{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		Year:          req.Year,
		GeneratedDays: generated,
	}
	if err := qtx.UpsertGenerated(ctx, balance); err != nil {
		s.logger.Error("accrue persist failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	resp, err := s.balanceResponse(ctx, qtx, req.EmployeeID, req.Year)
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("accrue commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	s.logger.Info("accrue success",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("generated_days", generated),
	)
	return resp, nil
}

func (s *service) Adjust(ctx context.Context, req AdjustRequest) (BalanceResponse, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, annualleaveerrors.ErrInvalidEmployeeID
	}
	if req.DeltaDays == 0 {
		return BalanceResponse{}, annualleaveerrors.ErrZeroAdjustment
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("adjust begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindBalance(ctx, req.EmployeeID, req.Year); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return BalanceResponse{}, annualleaveerrors.ErrBalanceNotFound
		}
		return BalanceResponse{}, err
	}

	adj := &LeaveAdjustment{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Year:       req.Year,
		Kind:       AdjustmentKindAdd,
		DeltaDays:  req.DeltaDays,
		Note:       req.Note,
	}
	if err := qtx.CreateAdjustment(ctx, adj); err != nil {
		s.logger.Error("adjust persist failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	resp, err := s.balanceResponse(ctx, qtx, req.EmployeeID, req.Year)
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("adjust commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	s.logger.Info("adjust success",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("delta_days", req.DeltaDays),
	)
	return resp, nil
}

// Override replaces the generated component with a manual total. The manual
// figure is still recorded as an adjustment row for audit.
func (s *service) Override(ctx context.Context, req OverrideRequest) (BalanceResponse, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return BalanceResponse{}, annualleaveerrors.ErrInvalidEmployeeID
	}
	if req.TotalDays < 0 {
		return BalanceResponse{}, annualleaveerrors.ErrNegativeOverride
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("override begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	balance := &LeaveBalance{
		ID:            uuid.New(),
		EmployeeID:    employeeUUID,
		Year:          req.Year,
		GeneratedDays: req.TotalDays,
	}
	if err := qtx.UpsertGenerated(ctx, balance); err != nil {
		s.logger.Error("override persist failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	adj := &LeaveAdjustment{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		Year:       req.Year,
		Kind:       AdjustmentKindOverride,
		DeltaDays:  req.TotalDays,
		Note:       req.Note,
	}
	if err := qtx.CreateAdjustment(ctx, adj); err != nil {
		s.logger.Error("override audit persist failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	resp, err := s.balanceResponse(ctx, qtx, req.EmployeeID, req.Year)
	if err != nil {
		return BalanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("override commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	s.logger.Info("override success",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("year", req.Year),
		zap.Int("total_days", req.TotalDays),
	)
	return resp, nil
}

// RecordUsage inserts one usage row per date. Dates already recorded are
// skipped by the unique index, so replays cannot double-deduct.
func (s *service) RecordUsage(ctx context.Context, req RecordUsageRequest) ([]BalanceResponse, error) {
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, annualleaveerrors.ErrInvalidEmployeeID
	}
	if len(req.Dates) == 0 {
		return nil, annualleaveerrors.ErrEmptyUsageDates
	}

	parsed := make([]time.Time, 0, len(req.Dates))
	years := make(map[int]struct{})
	for _, raw := range req.Dates {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, annualleaveerrors.InvalidUsageDate(raw)
		}
		parsed = append(parsed, d)
		years[d.Year()] = struct{}{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record usage begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	for _, d := range parsed {
		usage := &LeaveUsage{
			ID:         uuid.New(),
			EmployeeID: employeeUUID,
			UsageDate:  d,
			Year:       d.Year(),
		}
		if err := qtx.CreateUsage(ctx, usage); err != nil {
			s.logger.Error("record usage persist failed",
				zap.String("date", d.Format("2006-01-02")),
				zap.Error(err),
			)
			return nil, err
		}
	}

	responses := make([]BalanceResponse, 0, len(years))
	for year := range years {
		resp, err := s.balanceResponse(ctx, qtx, req.EmployeeID, year)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record usage commit failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("record usage success",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("dates", len(parsed)),
	)
	return responses, nil
}

func (s *service) GetBalance(ctx context.Context, employeeID string, year int) (BalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return BalanceResponse{}, annualleaveerrors.ErrInvalidEmployeeID
	}
	return s.balanceResponse(ctx, s.repo, employeeID, year)
}

// ListUsage returns the recorded leave dates for one year, oldest first.
func (s *service) ListUsage(ctx context.Context, employeeID string, year int) ([]UsageResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, annualleaveerrors.ErrInvalidEmployeeID
	}

	usages, err := s.repo.ListUsage(ctx, employeeID, year)
	if err != nil {
		s.logger.Error("list usage failed",
			zap.String("employee_id", employeeID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil, err
	}

	resp := make([]UsageResponse, 0, len(usages))
	for i := range usages {
		resp = append(resp, UsageResponse{
			Date: usages[i].UsageDate.Format("2006-01-02"),
			Year: usages[i].Year,
		})
	}
	return resp, nil
}

// balanceResponse assembles generated, additive adjustments, and usage into
// one view. Remaining is deliberately not clamped; an overdrawn balance is a
// state the caller must see.
func (s *service) balanceResponse(ctx context.Context, repo Repository, employeeID string, year int) (BalanceResponse, error) {
	generated := 0
	balance, err := repo.FindBalance(ctx, employeeID, year)
	switch {
	case err == nil:
		generated = balance.GeneratedDays
	case errors.Is(err, gorm.ErrRecordNotFound):
		// usage can predate accrual; generated stays zero
	default:
		return BalanceResponse{}, err
	}

	adjustment, err := repo.SumAddAdjustments(ctx, employeeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	used, err := repo.CountUsage(ctx, employeeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}

	return BalanceResponse{
		EmployeeID:     employeeID,
		Year:           year,
		GeneratedDays:  generated,
		AdjustmentDays: adjustment,
		UsedDays:       used,
		RemainingDays:  generated + adjustment - used,
	}, nil
}
