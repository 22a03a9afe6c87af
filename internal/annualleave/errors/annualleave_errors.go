package annualleaveerrors

import (
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a four digit year",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found, run accrual first",
		http.StatusNotFound,
	)
	ErrEmptyUsageDates = apperror.New(
		apperror.CodeInvalidInput,
		"at least one usage date is required",
		http.StatusBadRequest,
	)
	ErrNegativeOverride = apperror.New(
		apperror.CodeInvalidInput,
		"override total must not be negative",
		http.StatusBadRequest,
	)
	ErrZeroAdjustment = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment delta must not be zero",
		http.StatusBadRequest,
	)
)

func InvalidLeaveBasis(basis string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConfiguration,
		fmt.Sprintf("annual leave basis %q is not supported", basis),
		http.StatusInternalServerError,
	)
}

func InvalidUsageDate(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("usage date %q is not a valid YYYY-MM-DD date", date),
		http.StatusBadRequest,
	)
}
