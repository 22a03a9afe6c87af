package payroll

import (
	"go-payroll/internal/calculation"
	"go-payroll/internal/deduction"
)

type FinalizePayrollRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Year       int    `json:"year" binding:"required,min=1900,max=9999"`
	Month      int    `json:"month" binding:"required,min=1,max=12"`

	// SalaryPercentage overrides the configured global percentage when set.
	SalaryPercentage *string `json:"salary_percentage"`
	AdHocBonus       *string `json:"ad_hoc_bonus"`
	AdHocBonusApply  bool    `json:"ad_hoc_bonus_apply"`
}

type PayrollResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`

	Pay        calculation.Result `json:"pay"`
	Deductions deduction.Result   `json:"deductions"`
}
