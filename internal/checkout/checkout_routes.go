package checkout

import (
	"go-garment-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	co := r.Group("/checkout")
	co.Use(middleware.AuthMiddleware())
	co.Use(middleware.Session())
	{
		co.POST("", handler.Start)
		co.GET("", handler.Current)
		co.POST("/shipping", handler.SubmitShipping)
		co.POST("/payment", handler.SelectPayment)
		co.POST("/back", handler.Back)
		co.POST("/submit", handler.Submit)
		co.POST("/finish", handler.Finish)
	}

	// Snapshot profil ditulis saat login — padanan key "user" di
	// localStorage frontend lama.
	session := r.Group("/session")
	session.Use(middleware.AuthMiddleware())
	session.Use(middleware.Session())
	{
		session.POST("/profile", handler.SaveProfile)
	}
}
