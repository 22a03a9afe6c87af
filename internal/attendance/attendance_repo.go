package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, day *AttendanceDay) error
	FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceDay, error)
	DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error
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

// Upsert replaces the full day on conflict so re-submitting a corrected day
// is the normal editing flow, not an error.
func (r *repository) Upsert(ctx context.Context, day *AttendanceDay) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_time", "end_time", "status", "originally_holiday", "updated_at",
			}),
		}).
		Create(day).Error
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]AttendanceDay, error) {
	var days []AttendanceDay
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date >= ?", from).
		Where("work_date <= ?", to).
		Order("work_date ASC").
		Find(&days).Error
	return days, err
}

func (r *repository) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date).
		Delete(&AttendanceDay{}).Error
}
