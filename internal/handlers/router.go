package handlers

import (
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/services"

	"github.com/gin-gonic/gin"
)

// SetupRouter registers the public routes and the admin dashboard routes.
func SetupRouter(
	router *gin.Engine,
	authHandler *AuthHandler,
	menuHandler *MenuHandler,
	cartHandler *CartHandler,
	orderHandler *OrderHandler,
	userService services.UserService,
) {
	api := router.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/me", authHandler.Me)

		api.GET("/menu", menuHandler.List)
		api.GET("/menu/featured", menuHandler.Featured)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.PATCH("/cart/items/:id", cartHandler.UpdateQuantity)
		api.DELETE("/cart/items/:id", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.ClearCart)

		api.GET("/checkout/draft", cartHandler.GetDraft)
		api.PUT("/checkout/draft", cartHandler.SaveDraft)
		api.POST("/checkout", cartHandler.Checkout)

		api.GET("/orders", orderHandler.History)
	}

	admin := router.Group("/api/admin")
	admin.Use(RequireAdmin(userService))
	{
		admin.GET("/orders", orderHandler.ListAll)
		admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		admin.POST("/orders/:id/cancel", orderHandler.Cancel)

		admin.POST("/menu", menuHandler.Add)
		admin.PUT("/menu/:id", menuHandler.Update)
		admin.DELETE("/menu/:id", menuHandler.Delete)
		admin.PUT("/menu/featured", menuHandler.SetFeatured)
	}
}
