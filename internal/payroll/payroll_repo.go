package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *MonthlyPayroll) error
	FindByPeriod(ctx context.Context, employeeID string, year, month int) (*MonthlyPayroll, error)
	FindByID(ctx context.Context, id string) (*MonthlyPayroll, error)
	FindAllByPeriod(ctx context.Context, year, month, offset, limit int) ([]MonthlyPayroll, int64, error)
	MarkPayslipGenerated(ctx context.Context, id string, at time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Upsert replaces every computed column on conflict. Refinalizing a period
// must overwrite, never duplicate.
func (r *repository) Upsert(ctx context.Context, p *MonthlyPayroll) error {
	return r.db.WithContext(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "year"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"proration_ratio", "attendance_payment_ratio",
				"shortfall_minutes", "shortfall_amount", "weekly_absence_penalty",
				"overtime_minutes", "holiday_minutes", "night_minutes",
				"overtime_premium", "night_premium", "holiday_premium",
				"final_basic_salary", "final_fixed_overtime_pay", "final_bonus",
				"final_other_allowance", "final_meal_allowance", "final_vehicle_allowance",
				"final_rn_d_allowance", "final_childcare_subsidy", "final_premium_pay",
				"total_payable",
				"pension_employee", "health_employee", "long_term_care_employee",
				"employment_employee", "income_tax", "local_income_tax", "employee_total",
				"pension_employer", "health_employer", "long_term_care_employer",
				"employment_employer", "industrial_accident", "employer_total", "net_pay",
				"updated_at",
			}),
		}).
		Create(p).Error
}

func (r *repository) FindByPeriod(ctx context.Context, employeeID string, year, month int) (*MonthlyPayroll, error) {
	var p MonthlyPayroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Where("month = ?", month).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*MonthlyPayroll, error) {
	var p MonthlyPayroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAllByPeriod(ctx context.Context, year, month, offset, limit int) ([]MonthlyPayroll, int64, error) {
	var total int64
	base := r.db.WithContext(ctx).
		Model(&MonthlyPayroll{}).
		Where("year = ?", year).
		Where("month = ?", month)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payrolls []MonthlyPayroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("year = ?", year).
		Where("month = ?", month).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&payrolls).Error
	return payrolls, total, err
}

func (r *repository) MarkPayslipGenerated(ctx context.Context, id string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&MonthlyPayroll{}).
		Where("id = ?", id).
		Update("payslip_generated_at", at).Error
}
