package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	days := r.Group("/attendance")
	{
		days.POST("/days", handler.RecordDays)
		days.GET("/:employeeId", handler.GetMonth)
		days.DELETE("/:employeeId/:date", handler.DeleteDay)
	}
}
