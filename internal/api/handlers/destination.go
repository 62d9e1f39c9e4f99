package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"

	"wanderlist/internal/api/dto"
	"wanderlist/internal/api/services"
	"wanderlist/internal/repository"
)

type DestinationHandler struct {
	destinationService *services.DestinationService
}

func NewDestinationHandler(db *sqlx.DB, rdb *goredis.Client) *DestinationHandler {
	repo := repository.NewDestinationRepository(db)
	return &DestinationHandler{
		destinationService: services.NewDestinationService(repo, rdb),
	}
}

// List returns every destination.
func (h *DestinationHandler) List(c echo.Context) error {
	destinations, err := h.destinationService.List(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.DestinationsFromDomain(destinations))
}

// Create inserts a destination; id and createdAt are assigned server-side
// and visited always starts false.
func (h *DestinationHandler) Create(c echo.Context) error {
	var req dto.DestinationCreate
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}
	if err := c.Validate(&req); err != nil {
		if httpErr, ok := err.(*echo.HTTPError); ok {
			if msg, ok := httpErr.Message.(string); ok {
				return ErrBadRequest(c, msg)
			}
		}
		return ErrBadRequest(c, "invalid request")
	}

	destination, err := h.destinationService.Create(
		c.Request().Context(),
		*req.Name, *req.Country, req.Continent, req.Note, req.Tags,
	)
	if err != nil {
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusCreated, dto.DestinationFromDomain(destination))
}

// Update applies the fields present in the payload to an existing
// destination and returns the full updated record.
func (h *DestinationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Ids are opaque to clients; anything unparseable cannot match a row.
		return ErrNotFound(c, "Destination not found")
	}

	var req dto.DestinationUpdate
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request")
	}

	destination, err := h.destinationService.Update(c.Request().Context(), id, services.DestinationChanges{
		Name:      req.Name,
		Country:   req.Country,
		Continent: req.Continent,
		Note:      req.Note,
		Visited:   req.Visited,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return ErrNotFound(c, "Destination not found")
		}
		return ErrInternalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.DestinationFromDomain(destination))
}

// Delete removes a destination. The 404 for a missing row carries no
// specific detail, unlike Update.
func (h *DestinationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ErrNotFound(c, "")
	}

	if err := h.destinationService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrDestinationNotFound) {
			return ErrNotFound(c, "")
		}
		return ErrInternalServerError(c)
	}

	return c.NoContent(http.StatusNoContent)
}
