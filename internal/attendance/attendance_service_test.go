package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"go-payroll/internal/attendance"
	"go-payroll/internal/calculation"
)

type fakeAttendanceRepository struct {
	withTxFn  func(tx *sql.Tx) attendance.Repository
	upsertFn  func(ctx context.Context, day *attendance.AttendanceDay) error
	findFn    func(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceDay, error)
	deleteFn  func(ctx context.Context, employeeID string, date time.Time) error
	upserted  []attendance.AttendanceDay
	recordAll bool
}

func (f *fakeAttendanceRepository) WithTx(tx *sql.Tx) attendance.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAttendanceRepository) Upsert(ctx context.Context, day *attendance.AttendanceDay) error {
	if f.recordAll {
		f.upserted = append(f.upserted, *day)
	}
	if f.upsertFn != nil {
		return f.upsertFn(ctx, day)
	}
	return nil
}

func (f *fakeAttendanceRepository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceDay, error) {
	if f.findFn != nil {
		return f.findFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeAttendanceRepository) DeleteByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, employeeID, date)
	}
	return nil
}

func strPtr(v string) *string { return &v }

func setupAttendanceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *fakeAttendanceRepository, attendance.Service) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := &fakeAttendanceRepository{recordAll: true}
	return db, sqlMock, repo, attendance.NewService(db, repo)
}

func TestRecordDays(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("success upserts every day", func(t *testing.T) {
		db, sqlMock, repo, svc := setupAttendanceTest(t)
		defer db.Close()
		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		resp, err := svc.RecordDays(context.Background(), attendance.RecordMonthRequest{
			EmployeeID: employeeID,
			Days: []attendance.DayPayload{
				{Date: "2024-07-01", StartTime: strPtr("09:00"), EndTime: strPtr("18:00"), Status: "NORMAL"},
				{Date: "2024-07-02", Status: "ABSENCE"},
				{Date: "2024-07-06", StartTime: strPtr("09:00"), EndTime: strPtr("14:00"), Status: "NORMAL", OriginallyHoliday: true},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, repo.upserted, 3)
		assert.Len(t, resp, 3)
		assert.Equal(t, "2024-07-02", resp[1].Date)
		assert.True(t, repo.upserted[2].OriginallyHoliday)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("negative bad status writes nothing", func(t *testing.T) {
		db, _, repo, svc := setupAttendanceTest(t)
		defer db.Close()

		_, err := svc.RecordDays(context.Background(), attendance.RecordMonthRequest{
			EmployeeID: employeeID,
			Days: []attendance.DayPayload{
				{Date: "2024-07-01", Status: "NORMAL"},
				{Date: "2024-07-02", Status: "SICK"},
			},
		})

		assert.Error(t, err)
		assert.Empty(t, repo.upserted)
	})

	t.Run("negative malformed clock identifies the day", func(t *testing.T) {
		db, _, _, svc := setupAttendanceTest(t)
		defer db.Close()

		_, err := svc.RecordDays(context.Background(), attendance.RecordMonthRequest{
			EmployeeID: employeeID,
			Days: []attendance.DayPayload{
				{Date: "2024-07-03", StartTime: strPtr("9am"), Status: "NORMAL"},
			},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "2024-07-03")
	})

	t.Run("negative duplicate date in one request", func(t *testing.T) {
		db, _, _, svc := setupAttendanceTest(t)
		defer db.Close()

		_, err := svc.RecordDays(context.Background(), attendance.RecordMonthRequest{
			EmployeeID: employeeID,
			Days: []attendance.DayPayload{
				{Date: "2024-07-01", Status: "NORMAL"},
				{Date: "2024-07-01", Status: "ABSENCE"},
			},
		})

		assert.Error(t, err)
	})
}

func TestMonthRecords(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("success maps to engine records over one month", func(t *testing.T) {
		db, _, repo, svc := setupAttendanceTest(t)
		defer db.Close()

		workDate, _ := time.Parse("2006-01-02", "2024-07-01")
		repo.findFn = func(ctx context.Context, id string, from, to time.Time) ([]attendance.AttendanceDay, error) {
			assert.Equal(t, "2024-07-01", from.Format("2006-01-02"))
			assert.Equal(t, "2024-07-31", to.Format("2006-01-02"))
			return []attendance.AttendanceDay{
				{
					WorkDate:  workDate,
					StartTime: strPtr("09:00"),
					EndTime:   strPtr("18:00"),
					Status:    "NORMAL",
				},
			}, nil
		}

		records, err := svc.MonthRecords(context.Background(), employeeID, 2024, time.July)

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, calculation.StatusNormal, records[0].Status)
		assert.Equal(t, "09:00", *records[0].StartTime)
	})

	t.Run("negative invalid period", func(t *testing.T) {
		db, _, _, svc := setupAttendanceTest(t)
		defer db.Close()

		_, err := svc.MonthRecords(context.Background(), employeeID, 2024, time.Month(0))
		assert.Error(t, err)
	})
}
