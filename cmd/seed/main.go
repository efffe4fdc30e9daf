// Command seed bootstraps an Administrator role holding every permission and
// a first admin user, so a fresh install has a working login.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/config"
	"github.com/salmanrizwan1122/Unit-Factor-CMC-BackEnd/app/database"
)

func main() {
	config.Load()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed: ", err)
	}

	email := getenv("ADMIN_EMAIL", "admin@unitfactor.local")
	password := getenv("ADMIN_PASSWORD", "ChangeMe!123")
	name := getenv("ADMIN_NAME", "Administrator")

	// Administrator role with the full permission catalogue
	var roleID string
	err := db.QueryRow(
		`INSERT INTO roles (name, created_at, updated_at) VALUES ('Administrator', NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
	).Scan(&roleID)
	if err != nil {
		log.Fatal("Failed to create Administrator role: ", err)
	}

	_, err = db.Exec(
		`INSERT INTO role_permissions (role_id, permission_id)
		SELECT $1, p.id FROM permissions p
		ON CONFLICT DO NOTHING`,
		roleID,
	)
	if err != nil {
		log.Fatal("Failed to grant permissions: ", err)
	}

	var userID string
	err = db.QueryRow(`SELECT id FROM users WHERE email = $1`, email).Scan(&userID)
	if err == nil {
		fmt.Printf("Admin user already exists: %s\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	err = db.QueryRow(
		`INSERT INTO users (name, email, user_name, password, joining_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id`,
		name, email, "admin", string(hash), time.Now().Format("2006-01-02"),
	).Scan(&userID)
	if err != nil {
		log.Fatal("Failed to create admin user: ", err)
	}

	if _, err := db.Exec(`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, roleID); err != nil {
		log.Fatal("Failed to assign Administrator role: ", err)
	}

	fmt.Printf("Admin user created successfully: %s (%s)\n", name, email)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
