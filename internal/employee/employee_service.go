package employee

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateContract(ctx context.Context, id string, req UpdateContractRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	HireDateOf(ctx context.Context, employeeID string) (time.Time, error)
	PayProfileOf(ctx context.Context, employeeID string) (PayProfile, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested",
		zap.String("email", req.Email),
		zap.String("hire_date", req.HireDate),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("hire_date")
	}
	annualSalary, err := parseMoney(req.AnnualSalary, "annual_salary")
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !annualSalary.IsPositive() {
		return EmployeeResponse{}, employeeerrors.ErrNonPositiveAnnualSalary
	}
	if req.DependentCount < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeDependentCount
	}
	contract, err := parseContract(req.Contract)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e := &Employee{
		ID:             uuid.New(),
		FullName:       req.FullName,
		Email:          req.Email,
		HireDate:       hireDate,
		AnnualSalary:   annualSalary,
		DependentCount: req.DependentCount,
		Active:         true,
	}
	applyContract(e, contract)

	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.logger.Info("create employee success",
		zap.String("employee_id", e.ID.String()),
		zap.String("email", req.Email),
	)
	return mapToResponse(e), nil
}

func (s *service) GetAll(ctx context.Context, page, limit int) ([]EmployeeResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	employees, total, err := s.repo.FindAll(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	resp := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, mapToResponse(&employees[i]))
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.findEmployee(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return EmployeeResponse{}, apperror.InvalidField("hire_date")
	}
	annualSalary, err := parseMoney(req.AnnualSalary, "annual_salary")
	if err != nil {
		return EmployeeResponse{}, err
	}
	if !annualSalary.IsPositive() {
		return EmployeeResponse{}, employeeerrors.ErrNonPositiveAnnualSalary
	}
	if req.DependentCount < 0 {
		return EmployeeResponse{}, employeeerrors.ErrNegativeDependentCount
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := s.findEmployeeWith(ctx, qtx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	e.FullName = req.FullName
	e.Email = req.Email
	e.HireDate = hireDate
	e.AnnualSalary = annualSalary
	e.DependentCount = req.DependentCount
	if req.Active != nil {
		e.Active = *req.Active
	}

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(e), nil
}

// UpdateContract touches only the contract columns. Identity and salary
// basis stay as they are.
func (s *service) UpdateContract(ctx context.Context, id string, req UpdateContractRequest) (EmployeeResponse, error) {
	contract, err := parseContract(req.Contract)
	if err != nil {
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update contract begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := s.findEmployeeWith(ctx, qtx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	applyContract(e, contract)

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update contract persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update contract commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	s.logger.Info("update contract success", zap.String("employee_id", id))
	return mapToResponse(e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) HireDateOf(ctx context.Context, employeeID string) (time.Time, error) {
	e, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return time.Time{}, err
	}
	return e.HireDate, nil
}

func (s *service) findEmployee(ctx context.Context, id string) (*Employee, error) {
	return s.findEmployeeWith(ctx, s.repo, id)
}

func (s *service) findEmployeeWith(ctx context.Context, repo Repository, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employeeerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return e, nil
}

type contractValues struct {
	basicSalary      decimal.Decimal
	fixedOvertimePay decimal.Decimal
	bonus            decimal.Decimal
	otherAllowance   decimal.Decimal
	mealAllowance    decimal.Decimal
	vehicleAllowance decimal.Decimal
	rndAllowance     decimal.Decimal
	childcareSubsidy decimal.Decimal
}

func parseContract(p ContractPayload) (contractValues, error) {
	var c contractValues
	var err error

	if c.basicSalary, err = parseMoney(p.BasicSalary, "basic_salary"); err != nil {
		return c, err
	}
	if c.fixedOvertimePay, err = parseOptionalMoney(p.FixedOvertimePay, "fixed_overtime_pay"); err != nil {
		return c, err
	}
	if c.bonus, err = parseOptionalMoney(p.Bonus, "bonus"); err != nil {
		return c, err
	}
	if c.otherAllowance, err = parseOptionalMoney(p.OtherAllowance, "other_allowance"); err != nil {
		return c, err
	}
	if c.mealAllowance, err = parseOptionalMoney(p.MealAllowance, "meal_allowance"); err != nil {
		return c, err
	}
	if c.vehicleAllowance, err = parseOptionalMoney(p.VehicleAllowance, "vehicle_allowance"); err != nil {
		return c, err
	}
	if c.rndAllowance, err = parseOptionalMoney(p.RnDAllowance, "rnd_allowance"); err != nil {
		return c, err
	}
	if c.childcareSubsidy, err = parseOptionalMoney(p.ChildcareSubsidy, "childcare_subsidy"); err != nil {
		return c, err
	}
	return c, nil
}

func applyContract(e *Employee, c contractValues) {
	e.BasicSalary = c.basicSalary
	e.FixedOvertimePay = c.fixedOvertimePay
	e.Bonus = c.bonus
	e.OtherAllowance = c.otherAllowance
	e.MealAllowance = c.mealAllowance
	e.VehicleAllowance = c.vehicleAllowance
	e.RnDAllowance = c.rndAllowance
	e.ChildcareSubsidy = c.childcareSubsidy
}

func parseMoney(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, apperror.RequiredField(field)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero, apperror.InvalidField(field)
	}
	return v, nil
}

func parseOptionalMoney(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero, apperror.InvalidField(field)
	}
	return v, nil
}

func mapToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		FullName:       e.FullName,
		Email:          e.Email,
		HireDate:       e.HireDate.Format("2006-01-02"),
		AnnualSalary:   e.AnnualSalary.String(),
		DependentCount: e.DependentCount,
		Active:         e.Active,
		Contract: ContractResponse{
			BasicSalary:      e.BasicSalary.String(),
			FixedOvertimePay: e.FixedOvertimePay.String(),
			Bonus:            e.Bonus.String(),
			OtherAllowance:   e.OtherAllowance.String(),
			MealAllowance:    e.MealAllowance.String(),
			VehicleAllowance: e.VehicleAllowance.String(),
			RnDAllowance:     e.RnDAllowance.String(),
			ChildcareSubsidy: e.ChildcareSubsidy.String(),
		},
	}
}
