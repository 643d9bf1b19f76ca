package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// seedProducts is a small starter catalog for development environments.
var seedProducts = []model.Product{
	{
		Name:        "Wireless Mouse",
		Description: "Compact 2.4GHz wireless mouse",
		Price:       decimal.NewFromFloat(19.99),
		Category:    "accessories",
		Stock:       120,
		IsActive:    true,
	},
	{
		Name:        "Mechanical Keyboard",
		Description: "87-key tenkeyless, brown switches",
		Price:       decimal.NewFromFloat(74.50),
		Category:    "accessories",
		Stock:       45,
		IsActive:    true,
	},
	{
		Name:         "27\" Monitor",
		Description:  "QHD IPS display, 75Hz",
		Price:        decimal.NewFromFloat(229.00),
		Category:     "displays",
		Stock:        18,
		IsActive:     true,
		DisplayOrder: 1,
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}, &model.Order{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	adminEmail := getenv("ADMIN_EMAIL", "admin@storefront.local")
	adminPassword := getenv("ADMIN_PASSWORD", "changeme1")

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin %s already exists, skipping", adminEmail)
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, err := auth.HashPassword(adminPassword)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
		admin := &model.User{
			Name:         "Administrator",
			Email:        adminEmail,
			PasswordHash: hashed,
			Role:         model.RoleAdmin,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("Created admin account %s", adminEmail)
	} else {
		log.Fatalf("check admin: %v", err)
	}

	created := 0
	for i := range seedProducts {
		product := seedProducts[i]
		if err := productRepo.Create(ctx, &product); err != nil {
			log.Printf("Warning: seed product %q: %v", product.Name, err)
			continue
		}
		created++
	}
	log.Printf("Seeded %d products", created)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
