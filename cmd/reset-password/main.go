package main

import (
	"context"
	"flag"
	"log"

	"go-catalog-api/internal/config"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/database"
)

func main() {
	email := flag.String("email", "user1@net.com", "customer email")
	newPassword := flag.String("password", "password", "new password")
	flag.Parse()

	// 1. Load Env
	cfg := config.Load()

	// 2. Setup Database
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()
	users := repository.NewUserRepo(db)

	// 3. Find customer
	user, err := users.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("User %s not found in database: %v", *email, err)
	}

	// 4. Hash new password
	if err := user.SetPassword(*newPassword); err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := users.UpdatePassword(ctx, user.ID, user.Password); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
