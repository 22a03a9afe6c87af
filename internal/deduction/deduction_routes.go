package deduction

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	deductions := r.Group("/deductions")
	{
		deductions.POST("/compute", handler.Compute)
	}
}
