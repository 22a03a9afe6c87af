package employee_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
)

type fakeEmployeeRepository struct {
	withTxFn   func(tx *sql.Tx) employee.Repository
	createFn   func(ctx context.Context, e *employee.Employee) error
	findAllFn  func(ctx context.Context, offset, limit int) ([]employee.Employee, int64, error)
	findByIDFn func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn   func(ctx context.Context, e *employee.Employee) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, offset, limit int) ([]employee.Employee, int64, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:       "Kim Jiwoo",
		Email:          "jiwoo@example.com",
		HireDate:       "2022-03-02",
		AnnualSalary:   "36000000",
		DependentCount: 1,
		Contract: employee.ContractPayload{
			BasicSalary:      "2000000",
			FixedOvertimePay: "240000",
			Bonus:            "100000",
			MealAllowance:    "100000",
		},
	}
}

func TestCreateEmployee(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		var stored *employee.Employee
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			stored = e
			return nil
		}

		resp, err := deps.service.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "jiwoo@example.com", stored.Email)
		assert.True(t, stored.AnnualSalary.Equal(decimal.NewFromInt(36_000_000)))
		assert.Equal(t, "2000000", resp.Contract.BasicSalary)
		// omitted contract fields default to zero
		assert.Equal(t, "0", resp.Contract.VehicleAllowance)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate email maps to conflict", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"}
		}

		_, err := deps.service.Create(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("negative zero annual salary", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.AnnualSalary = "0"

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrNonPositiveAnnualSalary)
	})

	t.Run("negative malformed hire date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.HireDate = "02-03-2022"

		_, err := deps.service.Create(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("negative malformed contract amount", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		req := validCreateRequest()
		req.Contract.Bonus = "lots"

		_, err := deps.service.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestUpdateContract(t *testing.T) {
	employeeID := uuid.New()

	t.Run("success leaves identity untouched", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:           employeeID,
				FullName:     "Kim Jiwoo",
				Email:        "jiwoo@example.com",
				AnnualSalary: decimal.NewFromInt(36_000_000),
				BasicSalary:  decimal.NewFromInt(2_000_000),
			}, nil
		}
		var stored *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			stored = e
			return nil
		}

		resp, err := deps.service.UpdateContract(context.Background(), employeeID.String(), employee.UpdateContractRequest{
			Contract: employee.ContractPayload{
				BasicSalary: "2200000",
				Bonus:       "150000",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "2200000", stored.BasicSalary.String())
		assert.Equal(t, "Kim Jiwoo", resp.FullName)
		assert.Equal(t, "36000000", resp.AnnualSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.UpdateContract(context.Background(), uuid.NewString(), employee.UpdateContractRequest{
			Contract: employee.ContractPayload{BasicSalary: "2200000"},
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestContractTerms(t *testing.T) {
	e := employee.Employee{
		BasicSalary:      decimal.NewFromInt(2_000_000),
		FixedOvertimePay: decimal.NewFromInt(240_000),
		Bonus:            decimal.NewFromInt(100_000),
		MealAllowance:    decimal.NewFromInt(100_000),
	}

	terms := e.ContractTerms()

	assert.Equal(t, "2000000", terms.BasicSalary.String())
	assert.Equal(t, "2440000", terms.Sum().String())
}

func TestHireDateOf(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	id := uuid.New()
	hired, err := time.Parse("2006-01-02", "2020-01-01")
	assert.NoError(t, err)
	deps.repo.findByIDFn = func(ctx context.Context, got string) (*employee.Employee, error) {
		assert.Equal(t, id.String(), got)
		return &employee.Employee{ID: id, HireDate: hired}, nil
	}

	d, err := deps.service.HireDateOf(context.Background(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, "2020-01-01", d.Format("2006-01-02"))
}
