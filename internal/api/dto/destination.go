package dto

import (
	"wanderlist/internal/domain"
)

type Destination struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Country   string   `json:"country"`
	Continent string   `json:"continent"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags"`
	Visited   bool     `json:"visited"`
	CreatedAt string   `json:"createdAt"`
}

// DestinationCreate requires name and country to be present in the
// payload. Pointers distinguish a missing key from an empty string;
// "required" on a pointer only rejects nil, so "" is accepted.
type DestinationCreate struct {
	Name      *string  `json:"name" validate:"required"`
	Country   *string  `json:"country" validate:"required"`
	Continent string   `json:"continent"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags"`
}

// DestinationUpdate applies only the fields present in the payload.
// Tags are not updatable through PATCH.
type DestinationUpdate struct {
	Name      *string `json:"name"`
	Country   *string `json:"country"`
	Continent *string `json:"continent"`
	Note      *string `json:"note"`
	Visited   *bool   `json:"visited"`
}

func DestinationFromDomain(destination *domain.Destination) *Destination {
	if destination == nil {
		return nil
	}

	tags := []string(destination.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &Destination{
		ID:        destination.ID.String(),
		Name:      destination.Name,
		Country:   destination.Country,
		Continent: destination.Continent,
		Note:      destination.Note,
		Tags:      tags,
		Visited:   destination.Visited,
		CreatedAt: destination.CreatedAt,
	}
}

func DestinationsFromDomain(destinations []*domain.Destination) []*Destination {
	result := make([]*Destination, len(destinations))
	for i, destination := range destinations {
		result[i] = DestinationFromDomain(destination)
	}
	return result
}
