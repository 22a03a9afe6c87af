package annualleave

type AccrueRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
}

type AdjustRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
	DeltaDays  int    `json:"delta_days" binding:"required"`
	Note       string `json:"note" binding:"required"`
}

type OverrideRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
	TotalDays  int    `json:"total_days"`
	Note       string `json:"note" binding:"required"`
}

type RecordUsageRequest struct {
	EmployeeID string   `json:"employee_id" binding:"required,uuid"`
	Dates      []string `json:"dates" binding:"required,min=1"`
}

type UsageResponse struct {
	Date string `json:"date"`
	Year int    `json:"year"`
}

type BalanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	Year           int    `json:"year"`
	GeneratedDays  int    `json:"generated_days"`
	AdjustmentDays int    `json:"adjustment_days"`
	UsedDays       int    `json:"used_days"`
	RemainingDays  int    `json:"remaining_days"`
}
