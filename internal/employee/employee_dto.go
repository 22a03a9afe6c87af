package employee

type ContractPayload struct {
	BasicSalary      string `json:"basic_salary" binding:"required"`
	FixedOvertimePay string `json:"fixed_overtime_pay"`
	Bonus            string `json:"bonus"`
	OtherAllowance   string `json:"other_allowance"`
	MealAllowance    string `json:"meal_allowance"`
	VehicleAllowance string `json:"vehicle_allowance"`
	RnDAllowance     string `json:"rnd_allowance"`
	ChildcareSubsidy string `json:"childcare_subsidy"`
}

type CreateEmployeeRequest struct {
	FullName       string          `json:"full_name" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	HireDate       string          `json:"hire_date" binding:"required"`
	AnnualSalary   string          `json:"annual_salary" binding:"required"`
	DependentCount int             `json:"dependent_count" binding:"min=0"`
	Contract       ContractPayload `json:"contract" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	HireDate       string `json:"hire_date" binding:"required"`
	AnnualSalary   string `json:"annual_salary" binding:"required"`
	DependentCount int    `json:"dependent_count" binding:"min=0"`
	Active         *bool  `json:"active"`
}

type UpdateContractRequest struct {
	Contract ContractPayload `json:"contract" binding:"required"`
}

type ContractResponse struct {
	BasicSalary      string `json:"basic_salary"`
	FixedOvertimePay string `json:"fixed_overtime_pay"`
	Bonus            string `json:"bonus"`
	OtherAllowance   string `json:"other_allowance"`
	MealAllowance    string `json:"meal_allowance"`
	VehicleAllowance string `json:"vehicle_allowance"`
	RnDAllowance     string `json:"rnd_allowance"`
	ChildcareSubsidy string `json:"childcare_subsidy"`
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	HireDate       string           `json:"hire_date"`
	AnnualSalary   string           `json:"annual_salary"`
	DependentCount int              `json:"dependent_count"`
	Active         bool             `json:"active"`
	Contract       ContractResponse `json:"contract"`
}
