package annualleave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/annual-leave")
	{
		leaves.POST("/accrue", handler.Accrue)
		leaves.POST("/adjustments", handler.Adjust)
		leaves.POST("/overrides", handler.Override)
		leaves.POST("/usages", handler.RecordUsage)
		leaves.GET("/balances/:employeeId", handler.GetBalance)
		leaves.GET("/usages/:employeeId", handler.GetUsage)
	}
}
