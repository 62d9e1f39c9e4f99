// Command seed resets the destinations table to the fixture set. Unlike
// the seed-if-empty step at server startup, this always truncates first.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"wanderlist/internal/config"
	"wanderlist/internal/repository"
	"wanderlist/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Starting seed process...")

	repo := repository.NewDestinationRepository(db.DB())
	if err := repo.Truncate(); err != nil {
		log.Fatalf("Failed to truncate destinations: %v", err)
	}

	if err := seed.Insert(repo); err != nil {
		log.Fatalf("Failed to seed destinations: %v", err)
	}

	log.Printf("Seed process completed! Inserted %d destinations", len(seed.Fixtures))
}
