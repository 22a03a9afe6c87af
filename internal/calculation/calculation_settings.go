package calculation

import "github.com/shopspring/decimal"

// AnnualLeaveBasis selects which accrual policy the leave engine runs under.
const (
	LeaveBasisFiscal   = "FISCAL"
	LeaveBasisHireDate = "HIRE_DATE"
)

// Settings is the knob set every monthly computation runs against. It is
// loaded once per calculation and never mutated by the engine; callers pass
// it in explicitly so the engine stays pure.
type Settings struct {
	StandardWorkHours           int
	FixedOvertimeHours          int
	NominalFixedOvertimeMinutes int
	ApplyOvertime               bool
	ApplyNightWork              bool
	ApplyHolidayWork            bool
	SalaryPercentage            decimal.Decimal
	AnnualLeaveBasis            string
	DefaultStartTime            string
	DefaultEndTime              string
}

// DefaultSettings returns the documented defaults: 209 standard monthly
// hours, 15 fixed-overtime hours for rate derivation, a 10-hour nominal
// fixed-overtime threshold, all premiums enabled, 100% salary.
func DefaultSettings() Settings {
	return Settings{
		StandardWorkHours:           209,
		FixedOvertimeHours:          15,
		NominalFixedOvertimeMinutes: 600,
		ApplyOvertime:               true,
		ApplyNightWork:              true,
		ApplyHolidayWork:            true,
		SalaryPercentage:            decimal.NewFromInt(100),
		AnnualLeaveBasis:            LeaveBasisFiscal,
		DefaultStartTime:            "09:00",
		DefaultEndTime:              "18:00",
	}
}
