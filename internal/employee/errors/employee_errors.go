package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"email already registered",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrNonPositiveAnnualSalary = apperror.New(
		apperror.CodeInvalidInput,
		"annual_salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrNegativeDependentCount = apperror.New(
		apperror.CodeInvalidInput,
		"dependent_count must not be negative",
		http.StatusBadRequest,
	)
)
