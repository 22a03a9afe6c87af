package holiday

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	holidays := r.Group("/holidays")
	{
		holidays.GET("", handler.GetByYear)
		holidays.POST("", handler.Upsert)
		holidays.DELETE("/:date", handler.Delete)
	}
}
