package transaction

import (
	"go-garment-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	txs := r.Group("/transactions")
	txs.Use(middleware.AuthMiddleware())
	{
		txs.GET("", handler.List)
		txs.GET("/:id", handler.Detail)
	}

	// Verifikasi manual bukti bayar oleh admin back office.
	admin := r.Group("/admin/transactions")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RoleMiddleware("admin", "owner"))
	{
		admin.POST("/:id/verify", handler.Verify)
	}
}
