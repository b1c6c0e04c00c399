package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bimadesk/bimadesk/internal/ai"
	"github.com/bimadesk/bimadesk/internal/catalog"
	"github.com/bimadesk/bimadesk/internal/claims"
	"github.com/bimadesk/bimadesk/internal/config"
	"github.com/bimadesk/bimadesk/internal/database"
	"github.com/bimadesk/bimadesk/internal/handlers"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/services/policyadmin"
	"github.com/bimadesk/bimadesk/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize database (Detects Embedded vs External automatically)
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	// Note: db.Close() is called manually in shutdown handler below

	// 3. Auto-Migrate Schema (Critical for Zero-Config)
	log.Println("🚀 Synchronizing database schema...")
	err = db.AutoMigrate(
		&models.UserAccount{},
		&models.PasswordReset{},
		&models.Policy{},
		&models.Claim{},
	)
	if err != nil {
		log.Printf("⚠️ Migration warning: %v\n", err)
	} else {
		log.Println("✅ Schema synchronized successfully")
	}

	// 4. Seed the policy catalog when the table is empty
	var policyCount int64
	db.Model(&models.Policy{}).Count(&policyCount)
	if policyCount == 0 {
		for _, p := range catalog.SeedPolicies() {
			if err := db.Create(&p).Error; err != nil {
				log.Printf("⚠️ Failed to seed policy %s: %v", p.ID, err)
			}
		}
		log.Println("✅ Seeded policy catalog")
	}

	// 5. Build the catalog store from the persisted policies
	var policies []models.Policy
	if err := db.Order("id").Find(&policies).Error; err != nil || len(policies) == 0 {
		log.Println("⚠️ Falling back to built-in policy catalog")
		policies = catalog.SeedPolicies()
	}
	cat := catalog.New(policies)

	// 6. Claims repository over the database
	repo, err := claims.NewRepository(claims.NewGormStore(db.DB), cat)
	if err != nil {
		log.Fatalf("Failed to load claims: %v", err)
	}
	seed := catalog.SeedClaims()

	// 7. Live claim feed
	hub := websocket.NewHub()
	go hub.Run()

	// 8. Optional Gemini claim summariser
	var summarizer *ai.Summarizer
	if cfg.Gemini.APIKey != "" {
		geminiClient, err := ai.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("⚠️ Claim summariser disabled: %v", err)
		} else {
			defer geminiClient.Close()
			summarizer = ai.NewSummarizer(geminiClient)
			log.Println("✅ Claim summariser enabled")
		}
	} else {
		log.Println("Claim summariser disabled: GEMINI_API_KEY not configured")
	}

	// 9. Set up HTTP router
	router := handlers.NewRouter(db, cfg, cat, repo, seed, hub, summarizer)

	// 10. Start the policy import service (background)
	importService := policyadmin.NewImportService(db, cfg.PolicyAdmin)
	importService.Start()

	// 11. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 Server starting on port %s [%s]\n", cfg.Port, cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	importService.Stop()

	// Close database (this also stops embedded PostgreSQL)
	log.Println("🛑 Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Database close error: %v", err)
	}

	log.Println("✅ Shutdown complete")
}
