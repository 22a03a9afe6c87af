package annualleave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=annualleave_repo.go -destination=mock/annualleave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertGenerated(ctx context.Context, balance *LeaveBalance) error
	FindBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error)
	CreateAdjustment(ctx context.Context, adj *LeaveAdjustment) error
	SumAddAdjustments(ctx context.Context, employeeID string, year int) (int, error)
	CreateUsage(ctx context.Context, usage *LeaveUsage) error
	CountUsage(ctx context.Context, employeeID string, year int) (int, error)
	ListUsage(ctx context.Context, employeeID string, year int) ([]LeaveUsage, error)
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

// UpsertGenerated replaces only the generated component, keeping the row's
// identity stable across accrual reruns.
func (r *repository) UpsertGenerated(ctx context.Context, balance *LeaveBalance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"generated_days", "updated_at"}),
		}).
		Create(balance).Error
}

func (r *repository) FindBalance(ctx context.Context, employeeID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) CreateAdjustment(ctx context.Context, adj *LeaveAdjustment) error {
	return r.db.WithContext(ctx).Create(adj).Error
}

func (r *repository) SumAddAdjustments(ctx context.Context, employeeID string, year int) (int, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&LeaveAdjustment{}).
		Select("SUM(delta_days)").
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Where("kind = ?", AdjustmentKindAdd).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}

// CreateUsage relies on the unique (employee_id, usage_date) index; a
// duplicate date is silently skipped.
func (r *repository) CreateUsage(ctx context.Context, usage *LeaveUsage) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "usage_date"}},
			DoNothing: true,
		}).
		Create(usage).Error
}

func (r *repository) CountUsage(ctx context.Context, employeeID string, year int) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveUsage{}).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Count(&count).Error
	return int(count), err
}

func (r *repository) ListUsage(ctx context.Context, employeeID string, year int) ([]LeaveUsage, error) {
	var usages []LeaveUsage
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("year = ?", year).
		Order("usage_date ASC").
		Find(&usages).Error
	return usages, err
}
