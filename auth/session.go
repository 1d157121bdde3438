package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/beasportai/moberry/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sessionTTL = 24 * time.Hour

// POST /session
// Creates an anonymous browser session and issues its token. The cart is
// keyed on the session ID; this is session identity, not a user login.
func CreateSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "session_" + uuid.NewString()

		session := models.Session{
			ID:        sessionID,
			ExpiresAt: time.Now().Add(sessionTTL),
		}

		if err := db.Create(&session).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		token, err := issueSessionToken(sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": session.ExpiresAt,
		})
	}
}

func issueSessionToken(id string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"exp":        time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("SESSION_SECRET")))
}
