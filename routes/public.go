package routes

import (
	"github.com/beasportai/moberry/auth"
	enquiryControllers "github.com/beasportai/moberry/controllers/enquiry"
	insightsControllers "github.com/beasportai/moberry/controllers/insights"
	newsletterControllers "github.com/beasportai/moberry/controllers/newsletter"
	productControllers "github.com/beasportai/moberry/controllers/product"
	"github.com/beasportai/moberry/insights"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers everything reachable without a session.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, catalog *insights.Catalog) {
	// ──────────────── Sessions ────────────────
	r.POST("/session", auth.CreateSession(db))

	// ──────────────── Browse Products ────────────────
	r.GET("/products", productControllers.GetProducts(db))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(db)) // GET /products/:id
	r.GET("/categories", productControllers.GetAllCategoriesWithProducts(db))

	// ──────────────── Insights ────────────────
	insightsGroup := r.Group("/insights")
	{
		insightsGroup.GET("/", insightsControllers.GetInsights(catalog))             // GET /insights
		insightsGroup.GET("/categories", insightsControllers.GetCategories(catalog)) // GET /insights/categories
	}

	// ──────────────── Enquiries & Newsletter ────────────────
	r.POST("/enquiries", enquiryControllers.CreateEnquiry(db))
	r.GET("/newsletter/link", newsletterControllers.GetSignupLink)
}
