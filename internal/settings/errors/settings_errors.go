package settingserrors

import (
	"fmt"
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var ErrUnknownSettingKey = apperror.New(
	apperror.CodeInvalidInput,
	"unknown setting key",
	http.StatusBadRequest,
)

// InvalidSettingValue covers a stored value the engine cannot parse. A
// present but malformed value must abort the calculation, never silently
// fall back to the default.
func InvalidSettingValue(key, value string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConfiguration,
		fmt.Sprintf("setting %s has invalid value %q", key, value),
		http.StatusInternalServerError,
	)
}

func NonPositiveRateHours(key, value string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConfiguration,
		fmt.Sprintf("setting %s must be positive, got %q", key, value),
		http.StatusInternalServerError,
	)
}
