package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	calculationerrors "go-payroll/internal/calculation/errors"
)

// Input bundles everything one monthly computation needs. The engine does no
// I/O; the caller loads contract terms, attendance, holidays and settings and
// hands them in here.
type Input struct {
	HireDate     time.Time
	AnnualSalary decimal.Decimal
	Contract     ContractTerms
	Year         int
	Month        time.Month
	Records      []DayRecord
	Holidays     map[string]bool
	Settings     Settings

	// SalaryPercentage overrides the settings value when non-nil.
	SalaryPercentage *decimal.Decimal
	AdHocBonus       decimal.Decimal
	AdHocBonusApply  bool
}

var oneHundred = decimal.NewFromInt(100)

func clampZero(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// ComputeMonthlyPay runs the full pipeline: rate derivation, attendance
// classification, shortfall and penalty pricing, premiums, and final
// assembly. Pure and deterministic; identical inputs produce identical
// results. Whole-currency rounding (half up) happens here and only here.
func ComputeMonthlyPay(in Input) (Result, error) {
	if !in.AnnualSalary.IsPositive() {
		return Result{}, calculationerrors.ErrMissingAnnualSalary
	}

	pct := in.Settings.SalaryPercentage
	if in.SalaryPercentage != nil {
		pct = *in.SalaryPercentage
	}
	if pct.IsNegative() {
		return Result{}, calculationerrors.ErrNegativeSalaryPercentage
	}
	if in.AdHocBonus.IsNegative() {
		return Result{}, calculationerrors.ErrNegativeAdHocBonus
	}

	rate := DeriveWageRate(in.HireDate, in.Year, in.Month, in.AnnualSalary, in.Settings)

	tally, err := Classify(withDefaultClocks(in.Records, in.Settings), in.Holidays, in.Year, in.Month)
	if err != nil {
		return Result{}, err
	}

	shortfall := ShortfallDeduction(rate, tally.ShortfallMinutes)
	penalty := WeeklyAbsencePenalty(rate, len(tally.AbsenceWeeks))
	premiums := ComputePremiums(rate, tally, in.Settings)

	ratio := rate.ProrationRatio
	prorated := ContractTerms{
		BasicSalary:      in.Contract.BasicSalary.Mul(ratio),
		FixedOvertimePay: in.Contract.FixedOvertimePay.Mul(ratio),
		Bonus:            in.Contract.Bonus.Mul(ratio),
		OtherAllowance:   in.Contract.OtherAllowance.Mul(ratio),
		MealAllowance:    in.Contract.MealAllowance.Mul(ratio),
		VehicleAllowance: in.Contract.VehicleAllowance.Mul(ratio),
		RnDAllowance:     in.Contract.RnDAllowance.Mul(ratio),
		ChildcareSubsidy: in.Contract.ChildcareSubsidy.Mul(ratio),
	}

	totalDeduction := shortfall.Add(penalty)
	adjustedBasic := clampZero(prorated.BasicSalary.Sub(totalDeduction))

	adjustedBonus := prorated.Bonus
	if in.AdHocBonusApply {
		adjustedBonus = adjustedBonus.Add(in.AdHocBonus)
	}

	premiumSum := premiums.Overtime.Add(premiums.Night).Add(premiums.Holiday)

	factor := pct.DivRound(oneHundred, ratioScale)
	finalize := func(v decimal.Decimal) decimal.Decimal {
		return clampZero(v.Mul(factor)).Round(0)
	}

	res := Result{
		ProrationRatio:       ratio,
		ShortfallMinutes:     tally.ShortfallMinutes,
		ShortfallAmount:      shortfall.Round(0),
		WeeklyAbsencePenalty: penalty.Round(0),

		OvertimeMinutes: tally.OvertimeMinutes,
		HolidayMinutes:  tally.HolidayMinutes,
		NightMinutes:    tally.NightMinutes,

		OvertimePremium: premiums.Overtime.Round(0),
		NightPremium:    premiums.Night.Round(0),
		HolidayPremium:  premiums.Holiday.Round(0),

		FinalBasicSalary:      finalize(adjustedBasic),
		FinalFixedOvertimePay: finalize(prorated.FixedOvertimePay),
		FinalBonus:            finalize(adjustedBonus),
		FinalOtherAllowance:   finalize(prorated.OtherAllowance),
		FinalMealAllowance:    finalize(prorated.MealAllowance),
		FinalVehicleAllowance: finalize(prorated.VehicleAllowance),
		FinalRnDAllowance:     finalize(prorated.RnDAllowance),
		FinalChildcareSubsidy: finalize(prorated.ChildcareSubsidy),
		FinalPremiumPay:       finalize(premiumSum),
	}

	res.AttendancePaymentRatio = attendancePaymentRatio(prorated.Sum(), totalDeduction)

	res.TotalPayable = res.FinalBasicSalary.
		Add(res.FinalFixedOvertimePay).
		Add(res.FinalBonus).
		Add(res.FinalOtherAllowance).
		Add(res.FinalMealAllowance).
		Add(res.FinalVehicleAllowance).
		Add(res.FinalRnDAllowance).
		Add(res.FinalChildcareSubsidy).
		Add(res.FinalPremiumPay)

	return res, nil
}

// withDefaultClocks fills the configured default shift into NORMAL days
// recorded without a clock pair, so an unclocked worked day still counts as
// the standard schedule.
func withDefaultClocks(records []DayRecord, s Settings) []DayRecord {
	if s.DefaultStartTime == "" || s.DefaultEndTime == "" {
		return records
	}

	out := make([]DayRecord, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Status != StatusNormal {
			continue
		}
		hasStart := out[i].StartTime != nil && *out[i].StartTime != ""
		hasEnd := out[i].EndTime != nil && *out[i].EndTime != ""
		if hasStart || hasEnd {
			continue
		}
		start, end := s.DefaultStartTime, s.DefaultEndTime
		out[i].StartTime = &start
		out[i].EndTime = &end
	}
	return out
}

// attendancePaymentRatio is informational only; the deductions it reflects
// are already applied to the basic salary and must not be applied twice.
func attendancePaymentRatio(proratedSum, totalDeduction decimal.Decimal) decimal.Decimal {
	if proratedSum.IsZero() {
		return decimal.NewFromInt(1)
	}
	ratio := proratedSum.Sub(totalDeduction).DivRound(proratedSum, ratioScale)
	if ratio.IsNegative() {
		return decimal.Zero
	}
	if ratio.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return ratio
}
