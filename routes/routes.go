package routes

import (
	"github.com/beasportai/moberry/cart"
	cartControllers "github.com/beasportai/moberry/controllers/cart"
	"github.com/beasportai/moberry/insights"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public,
// session-scoped and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store, catalog *insights.Catalog, hub *cartControllers.NotificationHub) {
	// Public routes (no middleware)
	SetupPublicRoutes(r, db, catalog)

	// Session routes (session-token protected): the cart
	SetupSessionRoutes(r, db, store, hub)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, db)
}
