package routes

import (
	"github.com/beasportai/moberry/cart"
	cartControllers "github.com/beasportai/moberry/controllers/cart"
	"github.com/beasportai/moberry/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupSessionRoutes registers all "/session/*" endpoints plus the
// notification websocket. Requires the session-token middleware.
func SetupSessionRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store, hub *cartControllers.NotificationHub) {
	sessionGroup := r.Group("/session")
	sessionGroup.Use(middleware.ValidateSession)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := sessionGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(store))                         // GET /session/cart
			cartGroup.POST("/items", cartControllers.AddCartItem(db, store, hub))      // POST /session/cart/items
			cartGroup.DELETE("/items/:item_id", cartControllers.RemoveCartItem(store)) // DELETE /session/cart/items/:item_id
			cartGroup.PATCH("/items/:item_id", cartControllers.AdjustCartItem(store))  // PATCH /session/cart/items/:item_id
			cartGroup.PUT("/visibility", cartControllers.SetCartVisibility(store))     // PUT /session/cart/visibility

			// Quantity selector staged on product pages
			cartGroup.GET("/selector", cartControllers.GetSelector(store))
			cartGroup.POST("/selector/increment", cartControllers.IncrementSelector(store))
			cartGroup.POST("/selector/decrement", cartControllers.DecrementSelector(store))
		}
	}

	// ──────────────── Cart Notifications ────────────────
	r.GET("/ws/notifications", middleware.ValidateSession, hub.Handler)
}
