package annualleave

import (
	"time"

	"github.com/google/uuid"
)

const (
	AdjustmentKindAdd      = "ADD"
	AdjustmentKindOverride = "OVERRIDE"
)

// LeaveBalance holds the system-generated entitlement for one employee and
// leave year. Adjustments and usage live in their own tables so accrual can
// overwrite generated days without touching them.
type LeaveBalance struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leave_balances_employee_year"`
	Year          int       `gorm:"type:int;not null;uniqueIndex:idx_leave_balances_employee_year"`
	GeneratedDays int       `gorm:"type:int;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveAdjustment is an audit row. ADD rows contribute their delta to the
// balance; OVERRIDE rows record that generated days were replaced manually.
type LeaveAdjustment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_adjustments_employee_year"`
	Year       int       `gorm:"type:int;not null;index:idx_leave_adjustments_employee_year"`
	Kind       string    `gorm:"type:varchar(20);not null;default:'ADD'"`
	DeltaDays  int       `gorm:"type:int;not null"`
	Note       string    `gorm:"type:text"`

	CreatedAt time.Time
}

// LeaveUsage records one full day taken. The unique index makes recording
// the same date twice a no-op instead of a double deduction.
type LeaveUsage struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leave_usages_employee_date"`
	UsageDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_leave_usages_employee_date"`
	Year       int       `gorm:"type:int;not null;index:idx_leave_usages_year"`

	CreatedAt time.Time
}
