package main

import (
	"context"
	"flag"
	"log"

	"go-catalog-api/internal/config"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/seed"
	"go-catalog-api/pkg/database"
)

func main() {
	cfg := config.Load()

	random := flag.Int64("random", cfg.SeedRandom, "random seed for the generated fixtures")
	password := flag.String("password", seed.DefaultPassword, "password set for every seeded customer")
	flag.Parse()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	summary, err := seed.Run(context.Background(), db, seed.Options{Random: *random, Password: *password})
	if err != nil {
		log.Fatalf("Failed to seed fixtures: %v", err)
	}

	log.Printf("Done: %s", summary)
	log.Printf("Customers can log in as user1@net.com ... user5@net.com with password %q", *password)
}
