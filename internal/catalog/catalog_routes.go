package catalog

import (
	"go-garment-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	items := r.Group("/catalog")
	{
		items.GET("", handler.List)
		items.GET("/:id", handler.Show)
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", handler.Reviews)
		reviews.POST("", middleware.AuthMiddleware(), handler.AddReview)
	}
}
