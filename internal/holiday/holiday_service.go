package holiday

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	holidayerrors "go-payroll/internal/holiday/errors"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, date string) error
	GetByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	// MonthSet returns the public holiday dates of one month keyed by
	// YYYY-MM-DD, the shape the pay engine consumes.
	MonthSet(ctx context.Context, year int, month time.Month) (map[string]bool, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, req UpsertHolidayRequest) (HolidayResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return HolidayResponse{}, holidayerrors.InvalidHolidayDate(req.Date)
	}
	if req.Name == "" {
		return HolidayResponse{}, holidayerrors.ErrNameRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert holiday begin tx failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h := &PublicHoliday{
		ID:          uuid.New(),
		HolidayDate: date,
		Name:        req.Name,
	}
	if err := qtx.Upsert(ctx, h); err != nil {
		s.logger.Error("upsert holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert holiday commit failed", zap.Error(err))
		return HolidayResponse{}, err
	}
	s.logger.Info("upsert holiday success",
		zap.String("date", req.Date),
		zap.String("name", req.Name),
	)
	return HolidayResponse{Date: req.Date, Name: req.Name}, nil
}

func (s *service) Delete(ctx context.Context, rawDate string) error {
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return holidayerrors.InvalidHolidayDate(rawDate)
	}

	if err := s.repo.Delete(ctx, date); err != nil {
		s.logger.Error("delete holiday failed", zap.String("date", rawDate), zap.Error(err))
		return err
	}
	s.logger.Info("delete holiday success", zap.String("date", rawDate))
	return nil
}

func (s *service) GetByYear(ctx context.Context, year int) ([]HolidayResponse, error) {
	holidays, err := s.repo.FindByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	resp := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		resp = append(resp, HolidayResponse{
			Date: h.HolidayDate.Format("2006-01-02"),
			Name: h.Name,
		})
	}
	return resp, nil
}

func (s *service) MonthSet(ctx context.Context, year int, month time.Month) (map[string]bool, error) {
	if year < 1900 || year > 9999 || month < time.January || month > time.December {
		return nil, holidayerrors.InvalidPeriod(year, int(month))
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	holidays, err := s.repo.FindByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h.HolidayDate.Format("2006-01-02")] = true
	}
	return set, nil
}
