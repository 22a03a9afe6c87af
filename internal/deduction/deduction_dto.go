package deduction

type ComputeDeductionRequest struct {
	GrossMonthlyPay        string `json:"gross_monthly_pay" binding:"required"`
	IndustrialAccidentRate string `json:"industrial_accident_rate" binding:"required"`
	DependentCount         int    `json:"dependent_count" binding:"min=0"`
}
