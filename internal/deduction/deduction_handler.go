package deduction

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"go-payroll/internal/shared/response"
)

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger ...*zap.Logger) *Handler {
	l := zap.L().Named("deduction.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.handler")
	}
	return &Handler{logger: l}
}

func (h *Handler) Compute(c *gin.Context) {
	var req ComputeDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http compute deductions validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	gross, err := decimal.NewFromString(req.GrossMonthlyPay)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "gross_monthly_pay must be numeric", err.Error())
		return
	}
	accidentRate, err := decimal.NewFromString(req.IndustrialAccidentRate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "industrial_accident_rate must be numeric", err.Error())
		return
	}

	res := Compute(gross, accidentRate, req.DependentCount)
	response.Success(c, http.StatusOK, res, nil)
}
