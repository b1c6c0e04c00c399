// Command seed_demo provisions a demo account and demo data so the portal
// is usable immediately after a fresh install.
package main

import (
	"log"

	"gorm.io/gorm/clause"

	"github.com/bimadesk/bimadesk/internal/catalog"
	"github.com/bimadesk/bimadesk/internal/config"
	"github.com/bimadesk/bimadesk/internal/database"
	"github.com/bimadesk/bimadesk/internal/models"
	"github.com/bimadesk/bimadesk/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.UserAccount{},
		&models.PasswordReset{},
		&models.Policy{},
		&models.Claim{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Demo account
	password, err := utils.HashPassword("bimadesk-demo")
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}
	user := models.UserAccount{
		FirstName: "Asha",
		LastName:  "Verma",
		Email:     "demo@bimadesk.in",
		Password:  password,
		Contact:   "+91 98200 00000",
		Address:   "Mumbai, Maharashtra",
		Role:      "customer",
		IsActive:  true,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error; err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	// Policy catalog
	for _, p := range catalog.SeedPolicies() {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&p).Error; err != nil {
			log.Fatalf("Failed to seed policy %s: %v", p.ID, err)
		}
	}

	// Demo claims live in memory (catalog.SeedClaims) and are merged into
	// API responses at runtime, so nothing to insert for them here.

	log.Println("✅ Demo data seeded (login: demo@bimadesk.in / bimadesk-demo)")
}
