package enquiryControllers

import (
	"net/http"

	"github.com/beasportai/moberry/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EnquiryInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
}

// POST /enquiries
func CreateEnquiry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input EnquiryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		enquiry := models.Enquiry{
			Name:     input.Name,
			Email:    input.Email,
			Phone:    input.Phone,
			Interest: input.Interest,
			Message:  input.Message,
		}

		if err := db.Create(&enquiry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save enquiry"})
			return
		}

		c.JSON(http.StatusCreated, enquiry)
	}
}

// GET /admin/enquiries
func GetAllEnquiries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var enquiries []models.Enquiry
		if err := db.Order("created_at desc").Find(&enquiries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enquiries"})
			return
		}
		c.JSON(http.StatusOK, enquiries)
	}
}
