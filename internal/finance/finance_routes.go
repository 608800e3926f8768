package finance

import (
	"go-garment-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin", "owner"))
	{
		admin.POST("/finance/report", handler.Report)
		admin.GET("/users/count", handler.UsersCount)
		admin.GET("/customers/locations", handler.CustomerLocations)
	}
}
