package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Tuka1911/dymokminiapp/cart"
	"github.com/Tuka1911/dymokminiapp/catalog"
	"github.com/Tuka1911/dymokminiapp/checkout"
	"github.com/Tuka1911/dymokminiapp/config"
	orderControllers "github.com/Tuka1911/dymokminiapp/controllers/order"
	"github.com/Tuka1911/dymokminiapp/models"
	"github.com/Tuka1911/dymokminiapp/order"
	"github.com/Tuka1911/dymokminiapp/qr"
	"github.com/Tuka1911/dymokminiapp/routes"
	"github.com/Tuka1911/dymokminiapp/selection"
)

func main() {
	log.Println("✅ Starting Dymok storefront...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Init DB; without one, the cart and order archive live in memory only
	db := initDatabase()

	var storage cart.Storage
	var archive order.Archive
	if db != nil {
		if err := db.AutoMigrate(
			&models.CartSnapshot{},
			&models.OrderRecord{},
		); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
		storage = cart.NewGormStorage(db)
		archive = order.NewGormArchive(db)
	} else {
		log.Println("⚠️ No database configured, cart snapshots and orders are in-memory only")
		storage = cart.NewMemoryStorage()
		archive = order.NewMemoryArchive()
	}

	// Wire the storefront components
	provider := catalog.NewStaticProvider(catalog.DefaultProducts)

	store := cart.NewStore(storage)
	store.LoadFromStorage()

	rules := checkout.DefaultRules()
	flow := checkout.NewFlow(checkout.Config{
		RequireAddress: cfg.RequireAddress,
		SubmitTimeout:  cfg.SubmitTimeout,
		Rules:          rules,
	})

	feed := orderControllers.NewFeed()

	var submitter order.Submitter = order.LocalSubmitter{}
	if cfg.SubmitURL != "" {
		submitter = order.NewHTTPSubmitter(cfg.SubmitURL)
	}

	finalizer := &order.Finalizer{
		Rules:       rules,
		Payment:     cfg.Payment,
		ManagerBase: cfg.ManagerContactURL,
		Submitter:   submitter,
		Archive:     archive,
		OnOrder:     feed.Broadcast,
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Catalog:   provider,
		Cart:      store,
		Selection: selection.NewFlow(),
		Checkout:  flow,
		Rules:     rules,
		Finalizer: finalizer,
		Archive:   archive,
		Feed:      feed,
		Payment:   cfg.Payment,
		Encoder:   qr.PNGEncoder{},
	})

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection. Returns nil when no
// database is configured at all.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	if host == "" {
		return nil
	}

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
