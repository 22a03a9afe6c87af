package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", handler.Create)
		employees.PUT("/:id", handler.Update)
		employees.PUT("/:id/contract", handler.UpdateContract)
		employees.DELETE("/:id", handler.Delete)
	}
}
