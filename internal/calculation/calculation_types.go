package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	calculationerrors "go-payroll/internal/calculation/errors"
)

// WorkStatus is a closed tag; every switch over it handles all four cases
// plus a default that rejects unknown values.
type WorkStatus string

const (
	StatusNormal        WorkStatus = "NORMAL"
	StatusPaidHoliday   WorkStatus = "PAID_HOLIDAY"
	StatusUnpaidHoliday WorkStatus = "UNPAID_HOLIDAY"
	StatusAbsence       WorkStatus = "ABSENCE"
)

func ParseWorkStatus(v string) (WorkStatus, error) {
	switch WorkStatus(v) {
	case StatusNormal, StatusPaidHoliday, StatusUnpaidHoliday, StatusAbsence:
		return WorkStatus(v), nil
	default:
		return "", calculationerrors.InvalidWorkStatus(v)
	}
}

// ContractTerms holds the fixed monthly pay components of one employee.
// Immutable within a single calculation.
type ContractTerms struct {
	BasicSalary      decimal.Decimal
	FixedOvertimePay decimal.Decimal
	Bonus            decimal.Decimal
	OtherAllowance   decimal.Decimal
	MealAllowance    decimal.Decimal
	VehicleAllowance decimal.Decimal
	RnDAllowance     decimal.Decimal
	ChildcareSubsidy decimal.Decimal
}

// Sum returns the total of all contractual components.
func (c ContractTerms) Sum() decimal.Decimal {
	return c.BasicSalary.
		Add(c.FixedOvertimePay).
		Add(c.Bonus).
		Add(c.OtherAllowance).
		Add(c.MealAllowance).
		Add(c.VehicleAllowance).
		Add(c.RnDAllowance).
		Add(c.ChildcareSubsidy)
}

// DayRecord is one calendar day of attendance for the month being computed.
// StartTime/EndTime are "HH:MM" clock strings; an end earlier than the start
// means the shift crosses midnight.
type DayRecord struct {
	Date              time.Time
	StartTime         *string
	EndTime           *string
	Status            WorkStatus
	OriginallyHoliday bool
}

// WageRate carries the hire-proration ratio and the derived pay rates.
// Rates keep fractional precision; whole-unit rounding happens only at
// final assembly.
type WageRate struct {
	ProrationRatio decimal.Decimal
	HourlyRate     decimal.Decimal
	MinuteRate     decimal.Decimal
}

// Result is the fully itemized outcome of one monthly computation.
// Every monetary field is >= 0: deductions are clamped before they land here.
type Result struct {
	ProrationRatio         decimal.Decimal `json:"proration_ratio"`
	AttendancePaymentRatio decimal.Decimal `json:"attendance_payment_ratio"`

	ShortfallMinutes     int             `json:"shortfall_minutes"`
	ShortfallAmount      decimal.Decimal `json:"shortfall_amount"`
	WeeklyAbsencePenalty decimal.Decimal `json:"weekly_absence_penalty"`

	OvertimeMinutes int `json:"overtime_minutes"`
	HolidayMinutes  int `json:"holiday_minutes"`
	NightMinutes    int `json:"night_minutes"`

	OvertimePremium decimal.Decimal `json:"overtime_premium"`
	NightPremium    decimal.Decimal `json:"night_premium"`
	HolidayPremium  decimal.Decimal `json:"holiday_premium"`

	FinalBasicSalary      decimal.Decimal `json:"final_basic_salary"`
	FinalFixedOvertimePay decimal.Decimal `json:"final_fixed_overtime_pay"`
	FinalBonus            decimal.Decimal `json:"final_bonus"`
	FinalOtherAllowance   decimal.Decimal `json:"final_other_allowance"`
	FinalMealAllowance    decimal.Decimal `json:"final_meal_allowance"`
	FinalVehicleAllowance decimal.Decimal `json:"final_vehicle_allowance"`
	FinalRnDAllowance     decimal.Decimal `json:"final_rnd_allowance"`
	FinalChildcareSubsidy decimal.Decimal `json:"final_childcare_subsidy"`
	FinalPremiumPay       decimal.Decimal `json:"final_premium_pay"`

	TotalPayable decimal.Decimal `json:"total_payable"`
}
