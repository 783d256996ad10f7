package handlers

import (
	"errors"
	"fmt"
	"log"

	"eshop/internal/middleware"
	"eshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// FavoriteHandler handles HTTP requests for favorite toggling.
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
	}
}

// RegisterRoutes registers the favorite routes with the Fiber app.
func (h *FavoriteHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Post("/products/:id/favorite", authRequired, h.HandleToggleFavorite)
	router.Get("/favorites", authRequired, h.HandleListFavorites)
}

// HandleListFavorites returns the product IDs the authenticated user has
// favorited.
func (h *FavoriteHandler) HandleListFavorites(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	ids, err := h.favoriteService.ProductIDs(userID)
	if err != nil {
		log.Printf("Error listing favorites of user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not list favorites",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"product_ids": ids,
	})
}

// HandleToggleFavorite flips the favorite marker for the authenticated user
// and reports the resulting state.
func (h *FavoriteHandler) HandleToggleFavorite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	userID := middleware.UserID(c)
	isFavorite, err := h.favoriteService.Toggle(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		log.Printf("Error toggling favorite (user %d, product %d): %v", userID, id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not toggle favorite",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"product_id":  uint(id),
		"is_favorite": isFavorite,
	})
}
