package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"HireHub-backend/internal/database"
	"HireHub-backend/internal/model"
)

// generateRandomString creates a random hex string of length n
func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal(err)
	}
	return hex.EncodeToString(bytes)
}

// generateUniqueEmail tries until an unused admin email is found
func generateUniqueEmail(db *database.DBinstanceStruct) string {
	for {
		email := "admin_" + generateRandomString(4) + "@hirehub.local"
		var count int64
		db.Model(&model.UserDocument{}).Where("doc ->> 'email' = ?", email).Count(&count)
		if count == 0 {
			return email
		}
		// If email exists, loop again
	}
}

func main() {

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	// Generate unique email and password
	email := generateUniqueEmail(db)
	password := generateRandomString(8)

	// Hash the password before storing
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	// Create admin user document
	admin := model.User{
		ID:        uuid.NewString(),
		Name:      "Admin User",
		Email:     email,
		Role:      model.RoleAdmin,
		CreatedAt: time.Now(),
	}
	doc, err := json.Marshal(admin)
	if err != nil {
		log.Fatal("failed to encode admin document: ", err)
	}

	row := model.UserDocument{ID: admin.ID, Doc: doc, PasswordHash: string(hashedPassword)}
	if err := db.Create(&row).Error; err != nil {
		log.Fatal("failed to create admin: ", err)
	}

	// Print credentials (only show plain password here!)
	fmt.Println("Admin credentials generated successfully!")
	fmt.Println("======================================")
	fmt.Printf("Email:    %s\n", admin.Email)
	fmt.Printf("Password: %s\n", password)
	fmt.Println("======================================")

	os.Exit(0)
}
