package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/dexianlabs/pastelaria-api/internal/config"
	dbpkg "github.com/dexianlabs/pastelaria-api/internal/db"
	"github.com/dexianlabs/pastelaria-api/internal/models"
)

// Seeds the development database with an admin, a client account and a
// small pastel catalog.
func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	hashed, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.User{
		Name:         "Admin User",
		Email:        "admin@admin.com",
		PasswordHash: string(hashed),
		Type:         models.UserTypeAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	clientUser := models.User{
		Name:         "Client User",
		Email:        "client@client.com",
		PasswordHash: string(hashed),
		Type:         models.UserTypeClient,
	}
	if err := db.Create(&clientUser).Error; err != nil {
		log.Fatalf("failed to seed client user: %v", err)
	}

	birthDate := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	client := models.Client{
		UserID:     clientUser.ID,
		Phone:      "1234567890",
		BirthDate:  &birthDate,
		Address:    "123 Client St",
		Complement: "Apt 101",
		District:   "Central",
		Zipcode:    "12345-678",
	}
	if err := db.Create(&client).Error; err != nil {
		log.Fatalf("failed to seed client: %v", err)
	}

	products := []models.Product{
		{Name: "Pastel de Carne", Price: 5.50, Photo: "products/seed-carne.webp"},
		{Name: "Pastel de Queijo", Price: 4.50, Photo: "products/seed-queijo.webp"},
		{Name: "Pastel de Frango", Price: 6.00, Photo: "products/seed-frango.webp"},
		{Name: "Pastel de Pizza", Price: 6.50, Photo: "products/seed-pizza.webp"},
		{Name: "Pastel de Chocolate", Price: 7.00, Photo: "products/seed-chocolate.webp"},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("failed to seed product %q: %v", products[i].Name, err)
		}
	}

	order := models.Order{
		ClientID:  client.ID,
		ProductID: products[2].ID,
		Status:    models.OrderStatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		log.Fatalf("failed to seed order: %v", err)
	}

	log.Printf("seeded %d users, 1 client, %d products, 1 order", 2, len(products))
}
