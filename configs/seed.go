package configs

import (
	"log"

	"github.com/GoldenGeneration/Food-Connect-Backend/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDemo sets up a demo owner + restaurant with a small menu so the
// checkout flow is exercisable on a fresh DB.
func SeedDemo() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("demo-owner"), bcrypt.DefaultCost)
	owner := entity.User{
		Email:    "owner@demo.local",
		Password: string(hash),
		Name:     "Demo Owner",
		Role:     "owner",
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	rest := entity.Restaurant{
		Name:                  "Demo Kitchen",
		City:                  "Bangkok",
		Country:               "Thailand",
		DeliveryPrice:         20,
		EstimatedDeliveryTime: 30,
		UserID:                &owner.ID,
		MenuItems: []entity.MenuItem{
			{Name: "Pad Thai", Price: 120, FoodWeight: 5},
			{Name: "Green Curry", Price: 150, FoodWeight: 7},
			{Name: "Mango Sticky Rice", Price: 90, FoodWeight: 3},
		},
	}
	return db.Create(&rest).Error
}
