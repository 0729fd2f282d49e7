package controllers

import (
	"context"
	"errors"

	"github.com/idahoesports/site/internal/champions"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
)

type ChampionsLister interface {
	List(ctx context.Context, filter champions.Filter) (champions.Listing, error)
}

type ChampionsController struct {
	champions ChampionsLister
}

type ChampionsControllerDependencies struct {
	Champions ChampionsLister
}

func NewChampionsController(deps ChampionsControllerDependencies) *ChampionsController {
	return &ChampionsController{
		champions: deps.Champions,
	}
}

// ListChampions handles GET /api/champions?search=&year=&game=&level=
func (c *ChampionsController) ListChampions(ctx fiber.Ctx) error {
	if c.champions == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Championship results are not configured",
		})
	}

	filter, err := champions.ParseFilter(
		ctx.Query("search"),
		ctx.Query("year"),
		ctx.Query("game"),
		ctx.Query("level"),
	)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	listing, err := c.champions.List(ctx.RequestCtx(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list championship results")

		status := fiber.StatusBadGateway
		if errors.Is(err, context.Canceled) {
			status = fiber.StatusServiceUnavailable
		}

		return ctx.Status(status).JSON(fiber.Map{
			"error": "Failed to load championship results",
		})
	}

	return ctx.JSON(listing)
}
