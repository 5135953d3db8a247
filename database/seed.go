package database

import (
	"log"
	"santaratrip/constants"
	"santaratrip/model"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse("2006-01-02", dateStr)
	return t
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("santara123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "santara123"
	}
	users := []model.User{
		{Name: "Administrator", Email: "admin@santaratrip.com", Password: hashPassword, Role: constants.ROLE_ADMIN, Active: true},
	}

	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	destinations := []model.Destination{
		{Name: "Pantai Sanur", Slug: "pantai-sanur", Category: "pantai", City: "Denpasar", Province: "Bali", Price: 25000},
		{Name: "Taman Budaya Art Center", Slug: "taman-budaya-art-center", Category: "budaya", City: "Denpasar", Province: "Bali", Price: 50000},
	}
	for _, destination := range destinations {
		if err := db.Where(model.Destination{Slug: destination.Slug}).FirstOrCreate(&destination).Error; err != nil {
			log.Println("failed to seed destination:", destination.Name, "error:", err)
		}
	}

	events := []model.Event{
		{
			Name:      "Denpasar Festival",
			Slug:      "denpasar-festival",
			Category:  "festival",
			Location:  "Lapangan Puputan Badung",
			Price:     75000,
			Capacity:  500,
			Status:    model.EventActive,
			StartDate: parseDate("2026-12-20"),
			EndDate:   parseDate("2026-12-24"),
		},
	}
	for _, event := range events {
		if err := db.Where(model.Event{Slug: event.Slug}).FirstOrCreate(&event).Error; err != nil {
			log.Println("failed to seed event:", event.Name, "error:", err)
		}
	}
}
