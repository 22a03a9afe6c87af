package calculationerrors

import (
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrMissingAnnualSalary = apperror.New(
		apperror.CodeInvalidInput,
		"annual salary must be greater than zero",
		http.StatusBadRequest,
	)
	ErrNegativeSalaryPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"salary percentage must not be negative",
		http.StatusBadRequest,
	)
	ErrNegativeAdHocBonus = apperror.New(
		apperror.CodeInvalidInput,
		"ad-hoc bonus must not be negative",
		http.StatusBadRequest,
	)
	ErrNonPositiveRateHours = apperror.New(
		apperror.CodeConfiguration,
		"standard hours plus fixed overtime hours must be greater than zero",
		http.StatusInternalServerError,
	)
)

// Row-identified input failures. The whole calculation aborts on the first
// one; payroll correctness cannot be approximated per-record.

func InvalidWorkStatus(v string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("invalid work status %q", v),
		http.StatusBadRequest,
	)
}

func InvalidClockTime(date, value string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("invalid clock time %q on %s, expected HH:MM", value, date),
		http.StatusBadRequest,
	)
}

func IncompleteClockPair(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("both start and end time are required on %s when either is set", date),
		http.StatusBadRequest,
	)
}

func InconsistentDay(date string, status string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("day %s has status %s but carries clock times", date, status),
		http.StatusBadRequest,
	)
}

func DayOutsidePeriod(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("day %s is outside the computed month", date),
		http.StatusBadRequest,
	)
}

func DuplicateDay(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("day %s appears more than once", date),
		http.StatusBadRequest,
	)
}
