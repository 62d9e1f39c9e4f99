// Package seed populates the destinations table with starter entries the
// first time the server runs against an empty database.
package seed

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"wanderlist/internal/domain"
	"wanderlist/internal/repository"
)

// Fixtures is the starter set inserted when the table is empty. Shared
// with cmd/seed so the reseed tool and first-run seeding stay in sync.
var Fixtures = []domain.Destination{
	{Name: "Kyoto", Country: "Japan", Continent: "Asia", Note: "Cherry blossoms", Tags: domain.TagList{"culture", "nature", "food"}, Visited: false},
	{Name: "Lisbon", Country: "Portugal", Continent: "Europe", Note: "Ocean views", Tags: domain.TagList{"history", "ocean"}, Visited: true},
	{Name: "Patagonia", Country: "Argentina", Continent: "South America", Note: "Trekking", Tags: domain.TagList{"hiking", "mountains"}, Visited: false},
	{Name: "Marrakech", Country: "Morocco", Continent: "Africa", Note: "Spices", Tags: domain.TagList{"market", "desert"}, Visited: false},
	{Name: "Rome", Country: "Italy", Continent: "Europe", Note: "History and pasta", Tags: domain.TagList{"food", "art"}, Visited: false},
	{Name: "Reykjavik", Country: "Iceland", Continent: "Europe", Note: "Northern lights", Tags: domain.TagList{"snow", "adventure"}, Visited: false},
	{Name: "Cape Town", Country: "South Africa", Continent: "Africa", Note: "Table Mountain", Tags: domain.TagList{"view", "nature"}, Visited: false},
	{Name: "Sydney", Country: "Australia", Continent: "Oceania", Note: "Opera House", Tags: domain.TagList{"ocean", "city"}, Visited: false},
	{Name: "New York", Country: "USA", Continent: "North America", Note: "Time Square", Tags: domain.TagList{"shopping", "lights"}, Visited: true},
	{Name: "Istanbul", Country: "Turkey", Continent: "Europe/Asia", Note: "Bosphorus", Tags: domain.TagList{"bridge", "history"}, Visited: false},
}

// EnsureSeeded inserts the fixture destinations iff the table is empty at
// this moment. A table emptied later is reseeded only on a later startup.
func EnsureSeeded(repo *repository.DestinationRepository) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("count destinations: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := Insert(repo); err != nil {
		return err
	}

	log.Printf("seeded %d starter destinations", len(Fixtures))
	return nil
}

// Insert writes every fixture with a fresh id and creation timestamp.
func Insert(repo *repository.DestinationRepository) error {
	for _, fixture := range Fixtures {
		destination := fixture
		destination.ID = uuid.New()
		destination.CreatedAt = domain.NewTimestamp()
		if err := repo.Create(&destination); err != nil {
			return fmt.Errorf("seed %q: %w", destination.Name, err)
		}
	}
	return nil
}
