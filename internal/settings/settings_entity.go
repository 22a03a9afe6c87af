package settings

import "time"

// Setting is one row of the flat string key/value configuration map. Keys
// not present in the table fall back to documented defaults.
type Setting struct {
	Key   string `gorm:"type:varchar(100);primaryKey"`
	Value string `gorm:"type:text;not null"`

	UpdatedAt time.Time
}

// Documented setting keys.
const (
	KeyStandardWorkHours         = "standardWorkHours"
	KeyFixedOvertimeHours        = "fixedOvertimeHours"
	KeyNominalFixedOvertimeHours = "nominalFixedOvertimeHours"
	KeyApplyOvertime             = "applyOvertime"
	KeyApplyNightWork            = "applyNightWork"
	KeyApplyHolidayWork          = "applyHolidayWork"
	KeySalaryPercentage          = "salaryPercentage"
	KeyAnnualLeaveBasis          = "annualLeaveBasis"
	KeyDefaultStartTime          = "defaultStartTime"
	KeyDefaultEndTime            = "defaultEndTime"
	KeyIndustrialAccidentRate    = "industrialAccidentRate"
)

// Defaults returns the full documented key set with default values. The map
// is rebuilt on every call so callers can overlay stored rows freely.
func Defaults() map[string]string {
	return map[string]string{
		KeyStandardWorkHours:         "209",
		KeyFixedOvertimeHours:        "15",
		KeyNominalFixedOvertimeHours: "10",
		KeyApplyOvertime:             "true",
		KeyApplyNightWork:            "true",
		KeyApplyHolidayWork:          "true",
		KeySalaryPercentage:          "100",
		KeyAnnualLeaveBasis:          "FISCAL",
		KeyDefaultStartTime:          "09:00",
		KeyDefaultEndTime:            "18:00",
		KeyIndustrialAccidentRate:    "0.007",
	}
}
