package attendance

import (
	"time"

	"github.com/google/uuid"

	"go-payroll/internal/calculation"
)

// AttendanceDay is one recorded calendar day for one employee. Clock times
// are stored as "HH:MM" strings the same way they arrive; the engine parses
// them at calculation time.
type AttendanceDay struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_days_employee_date"`
	WorkDate   time.Time `gorm:"type:date;not null;uniqueIndex:idx_attendance_days_employee_date"`

	StartTime         *string `gorm:"type:varchar(5)"`
	EndTime           *string `gorm:"type:varchar(5)"`
	Status            string  `gorm:"type:varchar(20);not null;default:'NORMAL'"`
	OriginallyHoliday bool    `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayRecord converts the stored row into the engine's input shape.
func (a *AttendanceDay) DayRecord() calculation.DayRecord {
	return calculation.DayRecord{
		Date:              a.WorkDate,
		StartTime:         a.StartTime,
		EndTime:           a.EndTime,
		Status:            calculation.WorkStatus(a.Status),
		OriginallyHoliday: a.OriginallyHoliday,
	}
}
