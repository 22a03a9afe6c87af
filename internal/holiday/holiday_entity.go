package holiday

import (
	"time"

	"github.com/google/uuid"
)

// PublicHoliday marks one calendar date as a designated holiday. Weekends
// are derived from the calendar and never stored here.
type PublicHoliday struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HolidayDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_public_holidays_date"`
	Name        string    `gorm:"type:varchar(100);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
