package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"year and month must form a valid period",
		http.StatusBadRequest,
	)
	ErrInvalidAdHocBonus = apperror.New(
		apperror.CodeInvalidInput,
		"ad_hoc_bonus must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrInvalidSalaryPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"salary_percentage must be a non-negative number",
		http.StatusBadRequest,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found for this period",
		http.StatusNotFound,
	)
)
