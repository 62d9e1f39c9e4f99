package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"wanderlist/internal/api/handlers"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client) {
	e.Validator = NewValidator()

	e.GET("/health", healthCheck)

	destinationHandler := handlers.NewDestinationHandler(db, rdb)
	e.GET("/destinations", destinationHandler.List)
	e.POST("/destinations", destinationHandler.Create)
	e.PATCH("/destinations/:id", destinationHandler.Update)
	e.DELETE("/destinations/:id", destinationHandler.Delete)
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
