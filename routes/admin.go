package routes

import (
	enquiryControllers "github.com/beasportai/moberry/controllers/enquiry"
	productControllers "github.com/beasportai/moberry/controllers/product"
	"github.com/beasportai/moberry/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Products ────────────────
		adminGroup.POST("/products", productControllers.CreateProduct(db))
		adminGroup.PUT("/products/:id", productControllers.UpdateProduct(db))
		adminGroup.DELETE("/products/:id", productControllers.DeleteProduct(db))
		adminGroup.POST("/products/import", productControllers.ImportProductsFromExcel(db))
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(db))

		// ──────────────── Categories ────────────────
		adminGroup.POST("/categories", productControllers.CreateCategory(db))
		adminGroup.GET("/categories", productControllers.GetAllCategories(db))
		adminGroup.GET("/categories/:id", productControllers.GetCategoryByID(db))
		adminGroup.PUT("/categories/:id", productControllers.UpdateCategory(db))
		adminGroup.DELETE("/categories/:id", productControllers.DeleteCategory(db))

		// ──────────────── Enquiries (CRM) ────────────────
		adminGroup.GET("/enquiries", enquiryControllers.GetAllEnquiries(db))
		adminGroup.GET("/enquiries/export", enquiryControllers.ExportEnquiriesToExcel(db))
	}
}
