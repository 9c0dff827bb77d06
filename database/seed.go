package database

import (
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"store_backend/constants"
	"store_backend/model"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "admin123"
	}
	users := []model.User{
		{Name: "Administrator", Email: "admin@store.local", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed data for user:", user.Email, "error:", err)
		}
	}

	categories := []model.ProductCategory{
		{Name: "Sayuran"},
		{Name: "Buah"},
		{Name: "Minuman"},
	}
	for i := range categories {
		categories[i].Slug = slug.Make(categories[i].Name)
		if err := db.Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			log.Println("failed to seed data for category:", categories[i].Name, "error:", err)
		}
	}
}
