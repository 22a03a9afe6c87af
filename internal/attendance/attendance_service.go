package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/calculation"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	RecordDays(ctx context.Context, req RecordMonthRequest) ([]DayResponse, error)
	GetMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]DayResponse, error)
	// MonthRecords returns the month in the engine's input shape.
	MonthRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]calculation.DayRecord, error)
	DeleteDay(ctx context.Context, employeeID, date string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// RecordDays validates every day before writing anything; a single bad row
// rejects the whole request.
func (s *service) RecordDays(ctx context.Context, req RecordMonthRequest) ([]DayResponse, error) {
	s.logger.Debug("record days requested",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days", len(req.Days)),
	)

	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	if len(req.Days) == 0 {
		return nil, attendanceerrors.ErrEmptyDays
	}

	rows, err := validateDays(employeeUUID, req.Days)
	if err != nil {
		s.logger.Warn("record days validation failed", zap.Error(err))
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record days begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for i := range rows {
		if err := qtx.Upsert(ctx, &rows[i]); err != nil {
			s.logger.Error("record days persist failed",
				zap.String("date", rows[i].WorkDate.Format("2006-01-02")),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record days commit failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("record days success",
		zap.String("employee_id", req.EmployeeID),
		zap.Int("days", len(rows)),
	)

	resp := make([]DayResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, mapToDayResponse(&rows[i]))
	}
	return resp, nil
}

func (s *service) GetMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]DayResponse, error) {
	days, err := s.monthRows(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	resp := make([]DayResponse, 0, len(days))
	for i := range days {
		resp = append(resp, mapToDayResponse(&days[i]))
	}
	return resp, nil
}

func (s *service) MonthRecords(ctx context.Context, employeeID string, year int, month time.Month) ([]calculation.DayRecord, error) {
	days, err := s.monthRows(ctx, employeeID, year, month)
	if err != nil {
		return nil, err
	}

	records := make([]calculation.DayRecord, 0, len(days))
	for i := range days {
		records = append(records, days[i].DayRecord())
	}
	return records, nil
}

func (s *service) DeleteDay(ctx context.Context, employeeID, rawDate string) error {
	if _, err := uuid.Parse(employeeID); err != nil {
		return attendanceerrors.ErrInvalidEmployeeID
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return attendanceerrors.InvalidWorkDate(rawDate)
	}

	if err := s.repo.DeleteByEmployeeAndDate(ctx, employeeID, date); err != nil {
		s.logger.Error("delete day failed", zap.String("date", rawDate), zap.Error(err))
		return err
	}
	s.logger.Info("delete day success",
		zap.String("employee_id", employeeID),
		zap.String("date", rawDate),
	)
	return nil
}

func (s *service) monthRows(ctx context.Context, employeeID string, year int, month time.Month) ([]AttendanceDay, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	if year < 1900 || year > 9999 || month < time.January || month > time.December {
		return nil, attendanceerrors.ErrInvalidPeriod
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	return s.repo.FindByEmployeeAndRange(ctx, employeeID, from, to)
}

func validateDays(employeeUUID uuid.UUID, days []DayPayload) ([]AttendanceDay, error) {
	rows := make([]AttendanceDay, 0, len(days))
	seen := make(map[string]struct{}, len(days))

	for _, d := range days {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return nil, attendanceerrors.InvalidWorkDate(d.Date)
		}
		if _, dup := seen[d.Date]; dup {
			return nil, attendanceerrors.DuplicateWorkDate(d.Date)
		}
		seen[d.Date] = struct{}{}

		if _, err := calculation.ParseWorkStatus(d.Status); err != nil {
			return nil, err
		}
		for _, clock := range []*string{d.StartTime, d.EndTime} {
			if clock == nil {
				continue
			}
			if _, err := time.Parse("15:04", *clock); err != nil {
				return nil, attendanceerrors.InvalidClockTime(d.Date, *clock)
			}
		}

		rows = append(rows, AttendanceDay{
			ID:                uuid.New(),
			EmployeeID:        employeeUUID,
			WorkDate:          date,
			StartTime:         d.StartTime,
			EndTime:           d.EndTime,
			Status:            d.Status,
			OriginallyHoliday: d.OriginallyHoliday,
		})
	}
	return rows, nil
}

func mapToDayResponse(a *AttendanceDay) DayResponse {
	resp := DayResponse{
		Date:              a.WorkDate.Format("2006-01-02"),
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		Status:            a.Status,
		OriginallyHoliday: a.OriginallyHoliday,
	}

	if a.StartTime != nil && a.EndTime != nil && *a.StartTime != "" && *a.EndTime != "" {
		worked, err := calculation.NetWorkedMinutes(resp.Date, *a.StartTime, *a.EndTime)
		if err == nil {
			resp.WorkedMinutes = &worked
		}
	}
	return resp
}
