package holiday

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, h *PublicHoliday) error
	FindByRange(ctx context.Context, from, to time.Time) ([]PublicHoliday, error)
	FindByYear(ctx context.Context, year int) ([]PublicHoliday, error)
	Delete(ctx context.Context, date time.Time) error
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

func (r *repository) Upsert(ctx context.Context, h *PublicHoliday) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "holiday_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
		}).
		Create(h).Error
}

func (r *repository) FindByRange(ctx context.Context, from, to time.Time) ([]PublicHoliday, error) {
	var holidays []PublicHoliday
	err := r.db.WithContext(ctx).
		Where("holiday_date >= ?", from).
		Where("holiday_date <= ?", to).
		Order("holiday_date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (r *repository) FindByYear(ctx context.Context, year int) ([]PublicHoliday, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	return r.FindByRange(ctx, from, to)
}

func (r *repository) Delete(ctx context.Context, date time.Time) error {
	return r.db.WithContext(ctx).
		Where("holiday_date = ?", date).
		Delete(&PublicHoliday{}).Error
}
