package payroll

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-payroll/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb ...*redis.Client) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:employeeId", handler.GetByPeriod)
		payrolls.GET("/:employeeId/payslips/:id/download", handler.DownloadPayslip)
		if redisClient != nil {
			payrolls.POST("/finalize", middleware.Idempotency(redisClient), handler.Finalize)
		} else {
			payrolls.POST("/finalize", handler.Finalize)
		}
	}
}
