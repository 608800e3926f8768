package cart

import (
	"go-garment-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/cart")
	// Guest boleh punya cart; token hanya menentukan sumber data.
	carts.Use(middleware.OptionalAuthMiddleware())
	carts.Use(middleware.Session())
	{
		carts.GET("", handler.Detail)
		carts.GET("/count", handler.Count)
		carts.POST("/items", handler.AddItem)
		carts.PATCH("/selection", handler.SelectAll)

		items := carts.Group("/items/:cartId")
		{
			items.PATCH("", handler.SetQuantity)
			items.DELETE("", handler.Remove)
			items.PATCH("/selection", handler.Select)
		}
	}
}
