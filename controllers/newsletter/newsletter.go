package newsletterControllers

import (
	"net/http"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

const defaultSignupText = "Hi! I'd like to receive Moberry farm updates and investment insights."

// GET /newsletter/link
// The site has no mailing list backend; signups go through a pre-filled
// WhatsApp deep link instead.
func GetSignupLink(c *gin.Context) {
	number := os.Getenv("WHATSAPP_NUMBER")
	if number == "" {
		number = "919876543210"
	}

	link := "https://wa.me/" + number + "?text=" + url.QueryEscape(defaultSignupText)
	c.JSON(http.StatusOK, gin.H{"link": link})
}
