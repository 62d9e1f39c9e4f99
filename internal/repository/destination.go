package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"wanderlist/internal/domain"
)

var ErrDestinationNotFound = errors.New("destination not found")

type DestinationRepository struct {
	db *sqlx.DB
}

func NewDestinationRepository(db *sqlx.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) List() ([]*domain.Destination, error) {
	query := `
		SELECT id, name, country, continent, note, tags, visited, created_at
		FROM destinations
	`

	destinations := []*domain.Destination{}
	if err := r.db.Select(&destinations, query); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *DestinationRepository) FindByID(id uuid.UUID) (*domain.Destination, error) {
	query := `
		SELECT id, name, country, continent, note, tags, visited, created_at
		FROM destinations
		WHERE id = ?
	`

	destination := &domain.Destination{}
	err := r.db.Get(destination, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDestinationNotFound
		}
		return nil, err
	}
	return destination, nil
}

func (r *DestinationRepository) Create(destination *domain.Destination) error {
	query := `
		INSERT INTO destinations (id, name, country, continent, note, tags, visited, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		destination.ID, destination.Name, destination.Country, destination.Continent,
		destination.Note, destination.Tags, destination.Visited, destination.CreatedAt,
	)
	return err
}

// Update rewrites the mutable columns. CreatedAt and tags stay as stored;
// callers apply partial changes to a fetched record first.
func (r *DestinationRepository) Update(destination *domain.Destination) error {
	query := `
		UPDATE destinations
		SET name = ?, country = ?, continent = ?, note = ?, visited = ?
		WHERE id = ?
	`

	res, err := r.db.Exec(query,
		destination.Name, destination.Country, destination.Continent,
		destination.Note, destination.Visited, destination.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDestinationNotFound
	}
	return nil
}

func (r *DestinationRepository) Delete(id uuid.UUID) error {
	res, err := r.db.Exec(`DELETE FROM destinations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDestinationNotFound
	}
	return nil
}

func (r *DestinationRepository) Count() (int, error) {
	count := 0
	err := r.db.Get(&count, `SELECT COUNT(*) FROM destinations`)
	return count, err
}

func (r *DestinationRepository) Truncate() error {
	_, err := r.db.Exec(`DELETE FROM destinations`)
	return err
}
