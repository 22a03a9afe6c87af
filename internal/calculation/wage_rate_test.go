package calculation_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"go-payroll/internal/calculation"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveWageRate(t *testing.T) {
	settings := calculation.DefaultSettings()
	annual := decimal.NewFromInt(36_000_000)

	t.Run("success full month", func(t *testing.T) {
		rate := calculation.DeriveWageRate(date(2024, time.January, 1), 2024, time.June, annual, settings)

		assert.True(t, rate.ProrationRatio.Equal(decimal.NewFromInt(1)))
		// (36,000,000 / 12) / (209 + 15) = 13,392.857... -> 13,392.86
		assert.Equal(t, "13392.86", rate.HourlyRate.String())
		assert.Equal(t, "223.2143", rate.MinuteRate.String())
	})

	t.Run("success hired before target month", func(t *testing.T) {
		rate := calculation.DeriveWageRate(date(2023, time.November, 20), 2024, time.June, annual, settings)
		assert.True(t, rate.ProrationRatio.Equal(decimal.NewFromInt(1)))
	})

	t.Run("success hired on the 1st of target month", func(t *testing.T) {
		rate := calculation.DeriveWageRate(date(2024, time.June, 1), 2024, time.June, annual, settings)
		assert.True(t, rate.ProrationRatio.Equal(decimal.NewFromInt(1)))
	})

	t.Run("success mid-month hire prorates", func(t *testing.T) {
		rate := calculation.DeriveWageRate(date(2024, time.June, 15), 2024, time.June, annual, settings)

		// June 15 through June 30 inclusive = 16 of 30 days.
		want := decimal.NewFromInt(16).DivRound(decimal.NewFromInt(30), 10)
		assert.True(t, rate.ProrationRatio.Equal(want))
		assert.Equal(t, "0.5333333333", rate.ProrationRatio.String())
	})

	t.Run("negative non-positive denominator yields zero rates", func(t *testing.T) {
		broken := settings
		broken.StandardWorkHours = 0
		broken.FixedOvertimeHours = 0

		rate := calculation.DeriveWageRate(date(2024, time.January, 1), 2024, time.June, annual, broken)

		assert.True(t, rate.HourlyRate.IsZero())
		assert.True(t, rate.MinuteRate.IsZero())
		assert.True(t, rate.ProrationRatio.Equal(decimal.NewFromInt(1)))
	})
}
