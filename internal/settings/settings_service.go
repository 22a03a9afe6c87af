package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"go-payroll/internal/calculation"
	settingserrors "go-payroll/internal/settings/errors"
)

// Key untuk cache settings di Redis
const settingsCacheKey = "settings:all"

const settingsCacheTTL = 30 * time.Minute

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (map[string]string, error)
	Calculation(ctx context.Context) (calculation.Settings, error)
	LeaveBasis(ctx context.Context) (string, error)
	IndustrialAccidentRate(ctx context.Context) (decimal.Decimal, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

// effective merges stored rows over the documented defaults.
func (s *service) effective(ctx context.Context) (map[string]string, error) {
	// Coba ambil dari Redis
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, settingsCacheKey).Result()
		if err == nil {
			var m map[string]string
			if err := json.Unmarshal([]byte(cached), &m); err == nil {
				return m, nil
			}
		}
	}

	// Singleflight mencegah query berulang ke DB
	v, err, _ := s.sf.Do(settingsCacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		m := Defaults()
		for _, row := range rows {
			m[row.Key] = row.Value
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(m); err == nil {
				s.rdb.Set(ctx, settingsCacheKey, jsonData, settingsCacheTTL)
			}
		}
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(map[string]string), nil
}

func (s *service) GetAll(ctx context.Context) (map[string]string, error) {
	return s.effective(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateSettingsRequest) (map[string]string, error) {
	s.logger.Debug("update settings requested", zap.Int("keys", len(req.Values)))

	known := Defaults()
	for key, value := range req.Values {
		if _, ok := known[key]; !ok {
			return nil, settingserrors.ErrUnknownSettingKey
		}
		if err := validateValue(key, value); err != nil {
			s.logger.Warn("update settings validation failed",
				zap.String("key", key),
				zap.Error(err),
			)
			return nil, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update settings begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for key, value := range req.Values {
		if err := qtx.Upsert(ctx, &Setting{Key: key, Value: value}); err != nil {
			s.logger.Error("update settings persist failed", zap.String("key", key), zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update settings commit failed", zap.Error(err))
		return nil, err
	}

	// --- Invalidation Cache ---
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, settingsCacheKey).Err(); err != nil {
			s.logger.Error("settings cache invalidation failed", zap.Error(err))
		}
	}

	s.logger.Info("update settings success", zap.Int("keys", len(req.Values)))
	return s.effective(ctx)
}

// Calculation parses the effective map into the engine's settings struct.
// A present but malformed value aborts with a configuration error instead
// of silently reverting to a default.
func (s *service) Calculation(ctx context.Context) (calculation.Settings, error) {
	m, err := s.effective(ctx)
	if err != nil {
		return calculation.Settings{}, err
	}

	out := calculation.DefaultSettings()

	standard, err := parseInt(m, KeyStandardWorkHours)
	if err != nil {
		return calculation.Settings{}, err
	}
	fixedOT, err := parseInt(m, KeyFixedOvertimeHours)
	if err != nil {
		return calculation.Settings{}, err
	}
	if standard+fixedOT <= 0 {
		return calculation.Settings{}, settingserrors.NonPositiveRateHours(KeyStandardWorkHours, m[KeyStandardWorkHours])
	}
	out.StandardWorkHours = standard
	out.FixedOvertimeHours = fixedOT

	nominalHours, err := parseInt(m, KeyNominalFixedOvertimeHours)
	if err != nil {
		return calculation.Settings{}, err
	}
	if nominalHours < 0 {
		return calculation.Settings{}, settingserrors.InvalidSettingValue(KeyNominalFixedOvertimeHours, m[KeyNominalFixedOvertimeHours])
	}
	out.NominalFixedOvertimeMinutes = nominalHours * 60

	if out.ApplyOvertime, err = parseBool(m, KeyApplyOvertime); err != nil {
		return calculation.Settings{}, err
	}
	if out.ApplyNightWork, err = parseBool(m, KeyApplyNightWork); err != nil {
		return calculation.Settings{}, err
	}
	if out.ApplyHolidayWork, err = parseBool(m, KeyApplyHolidayWork); err != nil {
		return calculation.Settings{}, err
	}

	pct, err := parseDecimal(m, KeySalaryPercentage)
	if err != nil {
		return calculation.Settings{}, err
	}
	if pct.IsNegative() {
		return calculation.Settings{}, settingserrors.InvalidSettingValue(KeySalaryPercentage, m[KeySalaryPercentage])
	}
	out.SalaryPercentage = pct

	basis := m[KeyAnnualLeaveBasis]
	if basis != calculation.LeaveBasisFiscal && basis != calculation.LeaveBasisHireDate {
		return calculation.Settings{}, settingserrors.InvalidSettingValue(KeyAnnualLeaveBasis, basis)
	}
	out.AnnualLeaveBasis = basis

	for _, key := range []string{KeyDefaultStartTime, KeyDefaultEndTime} {
		if _, err := time.Parse("15:04", m[key]); err != nil {
			return calculation.Settings{}, settingserrors.InvalidSettingValue(key, m[key])
		}
	}
	out.DefaultStartTime = m[KeyDefaultStartTime]
	out.DefaultEndTime = m[KeyDefaultEndTime]

	return out, nil
}

func (s *service) LeaveBasis(ctx context.Context) (string, error) {
	m, err := s.effective(ctx)
	if err != nil {
		return "", err
	}
	basis := m[KeyAnnualLeaveBasis]
	if basis != calculation.LeaveBasisFiscal && basis != calculation.LeaveBasisHireDate {
		return "", settingserrors.InvalidSettingValue(KeyAnnualLeaveBasis, basis)
	}
	return basis, nil
}

func (s *service) IndustrialAccidentRate(ctx context.Context) (decimal.Decimal, error) {
	m, err := s.effective(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := parseDecimal(m, KeyIndustrialAccidentRate)
	if err != nil {
		return decimal.Zero, err
	}
	if rate.IsNegative() {
		return decimal.Zero, settingserrors.InvalidSettingValue(KeyIndustrialAccidentRate, m[KeyIndustrialAccidentRate])
	}
	return rate, nil
}

func parseInt(m map[string]string, key string) (int, error) {
	v, err := strconv.Atoi(m[key])
	if err != nil {
		return 0, settingserrors.InvalidSettingValue(key, m[key])
	}
	return v, nil
}

func parseBool(m map[string]string, key string) (bool, error) {
	v, err := strconv.ParseBool(m[key])
	if err != nil {
		return false, settingserrors.InvalidSettingValue(key, m[key])
	}
	return v, nil
}

func parseDecimal(m map[string]string, key string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(m[key])
	if err != nil {
		return decimal.Zero, settingserrors.InvalidSettingValue(key, m[key])
	}
	return v, nil
}

func validateValue(key, value string) error {
	switch key {
	case KeyStandardWorkHours:
		v, err := strconv.Atoi(value)
		if err != nil || v <= 0 {
			return settingserrors.NonPositiveRateHours(key, value)
		}
	case KeyFixedOvertimeHours, KeyNominalFixedOvertimeHours:
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 {
			return settingserrors.InvalidSettingValue(key, value)
		}
	case KeyApplyOvertime, KeyApplyNightWork, KeyApplyHolidayWork:
		if _, err := strconv.ParseBool(value); err != nil {
			return settingserrors.InvalidSettingValue(key, value)
		}
	case KeySalaryPercentage, KeyIndustrialAccidentRate:
		v, err := decimal.NewFromString(value)
		if err != nil || v.IsNegative() {
			return settingserrors.InvalidSettingValue(key, value)
		}
	case KeyAnnualLeaveBasis:
		if value != calculation.LeaveBasisFiscal && value != calculation.LeaveBasisHireDate {
			return settingserrors.InvalidSettingValue(key, value)
		}
	case KeyDefaultStartTime, KeyDefaultEndTime:
		if _, err := time.Parse("15:04", value); err != nil {
			return settingserrors.InvalidSettingValue(key, value)
		}
	}
	return nil
}
