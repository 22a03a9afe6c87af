package holidayerrors

import (
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var ErrNameRequired = apperror.New(
	apperror.CodeInvalidInput,
	"holiday name is required",
	http.StatusBadRequest,
)

func InvalidHolidayDate(date string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("holiday date %q is not a valid YYYY-MM-DD date", date),
		http.StatusBadRequest,
	)
}

func InvalidPeriod(year, month int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		fmt.Sprintf("period %d-%d is not a valid year and month", year, month),
		http.StatusBadRequest,
	)
}
