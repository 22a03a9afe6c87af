package calculation

import (
	"time"

	"github.com/shopspring/decimal"
)

// ratioScale keeps the proration ratio at high precision; compounding error
// is deferred to the single whole-unit rounding at assembly.
const ratioScale = 10

var (
	twelve  = decimal.NewFromInt(12)
	sixty   = decimal.NewFromInt(60)
	oneHalf = decimal.NewFromFloat(0.5)
)

// DeriveWageRate computes the hire-proration ratio and the statutory
// hourly/minute rates for the target month.
//
// The ratio is 1 unless the hire date falls inside the target month on a day
// other than the 1st, in which case it is the inclusive remainder of the
// month over its length. The hourly rate divides the prorated monthly
// equivalent by standard hours plus the fixed-overtime hours used for rate
// derivation; a non-positive denominator yields zero rates rather than a
// division panic.
func DeriveWageRate(hireDate time.Time, year int, month time.Month, annualSalary decimal.Decimal, s Settings) WageRate {
	ratio := decimal.NewFromInt(1)

	if hireDate.Year() == year && hireDate.Month() == month && hireDate.Day() != 1 {
		daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		daysEntitled := daysInMonth - hireDate.Day() + 1
		ratio = decimal.NewFromInt(int64(daysEntitled)).
			DivRound(decimal.NewFromInt(int64(daysInMonth)), ratioScale)
	}

	denominator := s.StandardWorkHours + s.FixedOvertimeHours
	if denominator <= 0 {
		return WageRate{ProrationRatio: ratio, HourlyRate: decimal.Zero, MinuteRate: decimal.Zero}
	}

	monthlyEquivalent := annualSalary.DivRound(twelve, ratioScale).Mul(ratio)
	hourlyRate := monthlyEquivalent.DivRound(decimal.NewFromInt(int64(denominator)), 2)
	minuteRate := hourlyRate.DivRound(sixty, 4)

	return WageRate{
		ProrationRatio: ratio,
		HourlyRate:     hourlyRate,
		MinuteRate:     minuteRate,
	}
}
