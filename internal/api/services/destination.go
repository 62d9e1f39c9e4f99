package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"wanderlist/internal/domain"
	r "wanderlist/internal/redis"
	"wanderlist/internal/repository"
)

const listCacheKey = "all"

type DestinationService struct {
	repo      *repository.DestinationRepository
	listCache *r.JSONCache[[]*domain.Destination]
}

func NewDestinationService(repo *repository.DestinationRepository, rdb *goredis.Client) *DestinationService {
	return &DestinationService{
		repo:      repo,
		listCache: r.NewJSONCache[[]*domain.Destination](rdb, "destinations", 30*time.Second),
	}
}

func (s *DestinationService) List(ctx context.Context) ([]*domain.Destination, error) {
	cached, err := s.listCache.Get(ctx, listCacheKey)
	if err == nil && cached != nil {
		return *cached, nil
	}

	destinations, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	_ = s.listCache.Set(ctx, listCacheKey, &destinations)

	return destinations, nil
}

func (s *DestinationService) Create(ctx context.Context, name, country, continent, note string, tags []string) (*domain.Destination, error) {
	destination := &domain.Destination{
		ID:        uuid.New(),
		Name:      name,
		Country:   country,
		Continent: continent,
		Note:      note,
		Tags:      domain.TagList(tags),
		Visited:   false,
		CreatedAt: domain.NewTimestamp(),
	}

	if err := s.repo.Create(destination); err != nil {
		return nil, err
	}

	_ = s.listCache.Delete(ctx, listCacheKey)

	return destination, nil
}

// DestinationChanges carries the fields present in a PATCH payload; nil
// fields are left untouched on the stored record.
type DestinationChanges struct {
	Name      *string
	Country   *string
	Continent *string
	Note      *string
	Visited   *bool
}

func (s *DestinationService) Update(ctx context.Context, id uuid.UUID, changes DestinationChanges) (*domain.Destination, error) {
	destination, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		destination.Name = *changes.Name
	}
	if changes.Country != nil {
		destination.Country = *changes.Country
	}
	if changes.Continent != nil {
		destination.Continent = *changes.Continent
	}
	if changes.Note != nil {
		destination.Note = *changes.Note
	}
	if changes.Visited != nil {
		destination.Visited = *changes.Visited
	}

	if err := s.repo.Update(destination); err != nil {
		return nil, err
	}

	_ = s.listCache.Delete(ctx, listCacheKey)

	return destination, nil
}

func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	_ = s.listCache.Delete(ctx, listCacheKey)

	return nil
}
