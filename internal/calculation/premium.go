package calculation

import "github.com/shopspring/decimal"

// Premiums holds the three additional-pay buckets. Night minutes may overlap
// overtime/holiday minutes; each premium is independent.
type Premiums struct {
	Overtime decimal.Decimal
	Night    decimal.Decimal
	Holiday  decimal.Decimal
}

// ComputePremiums converts the classified minute buckets into premium pay.
// Each bucket is gated by its own feature flag. Only the additional 0.5x is
// paid here; the base 1.0x is already covered by base pay and fixed
// allowances. Overtime and holiday minutes share the nominal fixed-overtime
// threshold: minutes below it are considered compensated by the fixed
// allowance. The holiday premium itself ignores the threshold.
func ComputePremiums(rate WageRate, tally Tally, s Settings) Premiums {
	p := Premiums{
		Overtime: decimal.Zero,
		Night:    decimal.Zero,
		Holiday:  decimal.Zero,
	}
	halfMinuteRate := rate.MinuteRate.Mul(oneHalf)

	if s.ApplyOvertime {
		eligible := tally.OvertimeMinutes + tally.HolidayMinutes
		if excess := eligible - s.NominalFixedOvertimeMinutes; excess > 0 {
			p.Overtime = halfMinuteRate.Mul(decimal.NewFromInt(int64(excess)))
		}
	}

	if s.ApplyHolidayWork && tally.HolidayMinutes > 0 {
		p.Holiday = halfMinuteRate.Mul(decimal.NewFromInt(int64(tally.HolidayMinutes)))
	}

	if s.ApplyNightWork && tally.NightMinutes > 0 {
		p.Night = halfMinuteRate.Mul(decimal.NewFromInt(int64(tally.NightMinutes)))
	}

	return p
}
