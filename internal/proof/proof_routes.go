package proof

import (
	"go-garment-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	proofs := r.Group("/payment/:transactionId")
	proofs.Use(middleware.AuthMiddleware())
	{
		proofs.GET("", handler.Status)
		proofs.POST("/proof", handler.Upload)
	}
}
