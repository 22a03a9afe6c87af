package holiday_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"go-payroll/internal/holiday"
)

type fakeHolidayRepository struct {
	withTxFn      func(tx *sql.Tx) holiday.Repository
	upsertFn      func(ctx context.Context, h *holiday.PublicHoliday) error
	findByRangeFn func(ctx context.Context, from, to time.Time) ([]holiday.PublicHoliday, error)
	findByYearFn  func(ctx context.Context, year int) ([]holiday.PublicHoliday, error)
	deleteFn      func(ctx context.Context, date time.Time) error
}

func (f *fakeHolidayRepository) WithTx(tx *sql.Tx) holiday.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeHolidayRepository) Upsert(ctx context.Context, h *holiday.PublicHoliday) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, h)
	}
	return nil
}

func (f *fakeHolidayRepository) FindByRange(ctx context.Context, from, to time.Time) ([]holiday.PublicHoliday, error) {
	if f.findByRangeFn != nil {
		return f.findByRangeFn(ctx, from, to)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) FindByYear(ctx context.Context, year int) ([]holiday.PublicHoliday, error) {
	if f.findByYearFn != nil {
		return f.findByYearFn(ctx, year)
	}
	return nil, nil
}

func (f *fakeHolidayRepository) Delete(ctx context.Context, date time.Time) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, date)
	}
	return nil
}

func holidayOn(value, name string) holiday.PublicHoliday {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return holiday.PublicHoliday{HolidayDate: d, Name: name}
}

func TestUpsertHoliday(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeHolidayRepository{}
		var stored *holiday.PublicHoliday
		repo.upsertFn = func(ctx context.Context, h *holiday.PublicHoliday) error {
			stored = h
			return nil
		}
		svc := holiday.NewService(db, repo)

		resp, err := svc.Upsert(context.Background(), holiday.UpsertHolidayRequest{
			Date: "2024-08-15",
			Name: "Liberation Day",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-08-15", stored.HolidayDate.Format("2006-01-02"))
		assert.Equal(t, "Liberation Day", resp.Name)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative malformed date", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := holiday.NewService(db, &fakeHolidayRepository{})

		_, err = svc.Upsert(context.Background(), holiday.UpsertHolidayRequest{
			Date: "15/08/2024",
			Name: "Liberation Day",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "15/08/2024")
	})
}

func TestMonthSet(t *testing.T) {
	t.Run("success covers exactly one month", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := &fakeHolidayRepository{}
		repo.findByRangeFn = func(ctx context.Context, from, to time.Time) ([]holiday.PublicHoliday, error) {
			assert.Equal(t, "2024-02-01", from.Format("2006-01-02"))
			assert.Equal(t, "2024-02-29", to.Format("2006-01-02"))
			return []holiday.PublicHoliday{
				holidayOn("2024-02-09", "Lunar New Year"),
				holidayOn("2024-02-12", "Substitute Holiday"),
			}, nil
		}
		svc := holiday.NewService(db, repo)

		set, err := svc.MonthSet(context.Background(), 2024, time.February)

		assert.NoError(t, err)
		assert.True(t, set["2024-02-09"])
		assert.True(t, set["2024-02-12"])
		assert.False(t, set["2024-02-10"])
	})

	t.Run("negative invalid period", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		svc := holiday.NewService(db, &fakeHolidayRepository{})

		_, err = svc.MonthSet(context.Background(), 2024, time.Month(13))
		assert.Error(t, err)
	})
}
