package productcontroller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/beasportai/moberry/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Filtering & sorting params
		search := c.Query("search")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Product{}).Preload("Variants").Preload("Categories")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		// Price filters apply to any variant of the product
		if minPriceStr != "" || maxPriceStr != "" {
			sub := db.Model(&models.ProductVariant{}).Select("product_id")
			if minPriceStr != "" {
				mp, err := strconv.ParseFloat(minPriceStr, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
					return
				}
				sub = sub.Where("price >= ?", mp)
			}
			if maxPriceStr != "" {
				mp, err := strconv.ParseFloat(maxPriceStr, 64)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
					return
				}
				sub = sub.Where("price <= ?", mp)
			}
			query = query.Where("id IN (?)", sub)
		}

		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.
					Joins("JOIN product_categories pc ON pc.product_id = products.id").
					Where("pc.category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
		}

		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		var products []models.Product
		if err := query.Order(orderClause).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
