package attendance

type DayPayload struct {
	Date              string  `json:"date" binding:"required"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	Status            string  `json:"status" binding:"required"`
	OriginallyHoliday bool    `json:"originally_holiday"`
}

type RecordMonthRequest struct {
	EmployeeID string       `json:"employee_id" binding:"required,uuid"`
	Days       []DayPayload `json:"days" binding:"required,min=1"`
}

type DayResponse struct {
	Date              string  `json:"date"`
	StartTime         *string `json:"start_time,omitempty"`
	EndTime           *string `json:"end_time,omitempty"`
	Status            string  `json:"status"`
	OriginallyHoliday bool    `json:"originally_holiday"`

	// WorkedMinutes is the break-netted working time; nil when the day has
	// no clock pair.
	WorkedMinutes *int `json:"worked_minutes,omitempty"`
}
