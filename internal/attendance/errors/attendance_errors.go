package attendanceerrors

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
	ErrEmptyDays = apperror.New(
		apperror.CodeInvalidInput,
		"at least one attendance day is required",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"year and month must form a valid period",
		http.StatusBadRequest,
	)
)

func InvalidWorkDate(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("work date %q is not a valid YYYY-MM-DD date", date),
		http.StatusBadRequest,
	)
}

func InvalidClockTime(date, value string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("clock time %q on %s is not a valid HH:MM time", value, date),
		http.StatusBadRequest,
	)
}

func DuplicateWorkDate(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("work date %s appears more than once in the request", date),
		http.StatusBadRequest,
	)
}
