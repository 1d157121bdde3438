package enquiryControllers

import (
	"net/http"

	"github.com/beasportai/moberry/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/enquiries/export
func ExportEnquiriesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var enquiries []models.Enquiry
		if err := db.Order("created_at desc").Find(&enquiries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enquiries"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Enquiries")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Email", "Phone", "Interest", "Message", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, e := range enquiries {
			row := sheet.AddRow()
			row.AddCell().SetValue(e.ID)
			row.AddCell().SetValue(e.Name)
			row.AddCell().SetValue(e.Email)
			row.AddCell().SetValue(e.Phone)
			row.AddCell().SetValue(e.Interest)
			row.AddCell().SetValue(e.Message)
			row.AddCell().SetValue(e.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", `attachment; filename="enquiries.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
