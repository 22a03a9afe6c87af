package calculation

import "github.com/shopspring/decimal"

// ShortfallDeduction prices the accumulated unworked weekday minutes at the
// statutory minute rate.
func ShortfallDeduction(rate WageRate, shortfallMinutes int) decimal.Decimal {
	if shortfallMinutes <= 0 {
		return decimal.Zero
	}
	return rate.MinuteRate.Mul(decimal.NewFromInt(int64(shortfallMinutes)))
}

// WeeklyAbsencePenalty charges one full day's wage for every distinct week
// containing an unauthorized absence. The weekly paid-rest allowance is
// forfeited as a whole; the charge does not scale with the number of absence
// days inside the week.
func WeeklyAbsencePenalty(rate WageRate, absenceWeeks int) decimal.Decimal {
	if absenceWeeks <= 0 {
		return decimal.Zero
	}
	dayWage := rate.HourlyRate.Mul(decimal.NewFromInt(8))
	return dayWage.Mul(decimal.NewFromInt(int64(absenceWeeks)))
}
