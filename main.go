package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/beasportai/moberry/cart"
	cartControllers "github.com/beasportai/moberry/controllers/cart"
	"github.com/beasportai/moberry/insights"
	"github.com/beasportai/moberry/models"
	"github.com/beasportai/moberry/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductVariant{},
		&models.Category{},
		&models.Session{},
		&models.Enquiry{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Session carts live in memory for the lifetime of the process
	store := cart.NewStore()

	// Location guides are fetched once; until the fetch resolves the
	// insights endpoints serve the editorial articles with loading=true
	catalog := insights.NewCatalog(insights.NewGuideClient(os.Getenv("LOCATION_GUIDES_URL")))
	go catalog.Load(context.Background())

	hub := cartControllers.NewNotificationHub()

	// Gin setup
	r := gin.Default()

	// Allow large image uploads (100 MB)
	r.MaxMultipartMemory = 100 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "/var/www/moberry/uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, db, store, catalog, hub)

	// Purge expired sessions at 3 AM daily
	go startDailySessionCleanup(db, store, 3, 0)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailySessionCleanup removes expired sessions and their carts at a fixed hour
func startDailySessionCleanup(db *gorm.DB, store *cart.Store, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next session cleanup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		cleanupExpiredSessions(db, store)
	}
}

// cleanupExpiredSessions deletes expired session rows and drops their in-memory carts
func cleanupExpiredSessions(db *gorm.DB, store *cart.Store) {
	var expired []models.Session
	if err := db.Where("expires_at < ?", time.Now()).Find(&expired).Error; err != nil {
		log.Printf("❌ Failed to list expired sessions: %v", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	for _, session := range expired {
		store.Drop(session.ID)
	}

	if err := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error; err != nil {
		log.Printf("❌ Failed to delete expired sessions: %v", err)
		return
	}
	log.Printf("🗑️ Removed %d expired sessions", len(expired))
}
