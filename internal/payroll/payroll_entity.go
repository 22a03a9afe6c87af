package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyPayroll is one finalized pay period. The unique (employee, year,
// month) index plus the upsert in the repository make finalization
// idempotent: recomputing a period replaces the prior row.
//
// Amount disimpan sebagai numeric, bukan float, untuk hindari rounding error.
type MonthlyPayroll struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_payrolls_period"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`
	Year       int              `gorm:"type:int;not null;uniqueIndex:idx_monthly_payrolls_period"`
	Month      int              `gorm:"type:int;not null;uniqueIndex:idx_monthly_payrolls_period"`

	ProrationRatio         decimal.Decimal `gorm:"type:numeric(12,10);not null;default:1"`
	AttendancePaymentRatio decimal.Decimal `gorm:"type:numeric(12,10);not null;default:1"`

	ShortfallMinutes     int             `gorm:"type:int;not null;default:0"`
	ShortfallAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	WeeklyAbsencePenalty decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	OvertimeMinutes int `gorm:"type:int;not null;default:0"`
	HolidayMinutes  int `gorm:"type:int;not null;default:0"`
	NightMinutes    int `gorm:"type:int;not null;default:0"`

	OvertimePremium decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NightPremium    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HolidayPremium  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	FinalBasicSalary      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalFixedOvertimePay decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalBonus            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalOtherAllowance   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalMealAllowance    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalVehicleAllowance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalRnDAllowance     decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalChildcareSubsidy decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	FinalPremiumPay       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TotalPayable          decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	PensionEmployee      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HealthEmployee       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LongTermCareEmployee decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EmploymentEmployee   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	IncomeTax            decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LocalIncomeTax       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EmployeeTotal        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	PensionEmployer      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HealthEmployer       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	LongTermCareEmployer decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EmploymentEmployer   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	IndustrialAccident   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EmployerTotal        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay               decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt          time.Time
	UpdatedAt          time.Time
	PayslipGeneratedAt *time.Time `gorm:"index"`
}

type PayrollEmployee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}
