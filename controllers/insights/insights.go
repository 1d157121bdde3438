package insightsControllers

import (
	"net/http"
	"strconv"

	"github.com/beasportai/moberry/insights"
	"github.com/gin-gonic/gin"
)

// GET /insights?search=&category=&page=
// Serves one page of the merged catalog. While the location-guide fetch
// is still in flight the response carries loading=true and only the
// editorial articles, so the client can render a placeholder.
func GetInsights(catalog *insights.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := insights.NewView(catalog.Articles())
		view.SetCategory(c.Query("category"))
		view.SetSearch(c.Query("search"))

		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.Atoi(pageStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
			view.SetPage(page)
		}

		c.JSON(http.StatusOK, gin.H{
			"articles":    view.PageSlice(),
			"categories":  catalog.Categories(),
			"page":        view.Page(),
			"total_pages": view.TotalPages(),
			"total":       len(view.Filtered()),
			"loading":     catalog.Loading(),
		})
	}
}

// GET /insights/categories
func GetCategories(catalog *insights.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
	}
}
