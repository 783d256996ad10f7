package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"eshop/internal/middleware"
	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the catalog: the public paged
// listing and the admin-only write operations.
type ProductHandler struct {
	catalogService *services.CatalogService
	productService *services.ProductService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService, productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		productService: productService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app. Reads are
// public (the listing sees the caller's identity when a token is present);
// writes require an admin token.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, optionalAuth, authRequired, adminRequired fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", optionalAuth, h.HandleQueryProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", authRequired, adminRequired, h.HandleCreateProduct)
	productRoutes.Put("/:id", authRequired, adminRequired, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", authRequired, adminRequired, h.HandleDeleteProduct)
}

// HandleQueryProducts serves the paged, filtered catalog listing. Unparsable
// query parameters mean "absent", never an error; only a too-short search
// term is rejected.
func (h *ProductHandler) HandleQueryProducts(c *fiber.Ctx) error {
	var categoryID uint
	if raw := c.Query("categoryId"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			categoryID = uint(parsed)
		}
	}

	query := models.ProductQuery{
		Page:          c.QueryInt("page", 1),
		PageSize:      c.QueryInt("pageSize", services.DefaultPageSize),
		Search:        c.Query("search"),
		CategoryID:    categoryID,
		FavoritesOnly: c.QueryBool("favoritesOnly", false),
		UserID:        middleware.UserID(c),
	}

	result, err := h.catalogService.QueryProducts(query)
	if err != nil {
		if errors.Is(err, services.ErrSearchTooShort) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Search term must be at least 3 characters long",
			})
		}
		log.Printf("Error querying products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(result)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	product, err := h.productService.GetProductByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		log.Printf("Error getting product by ID %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product (admin only).
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = 0 // IDs are assigned by the store

	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}

	if err := h.productService.CreateProduct(&product); err != nil {
		return h.writeErrorResponse(c, err, "Could not create product")
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product (admin only).
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return validationErrorResponse(c, err)
	}

	updated, err := h.productService.UpdateProduct(uint(id), &product)
	if err != nil {
		return h.writeErrorResponse(c, err, "Could not update product")
	}
	return c.JSON(updated)
}

// HandleDeleteProduct deletes a product by its ID (admin only).
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	if err := h.productService.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %d not found", id),
			})
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// writeErrorResponse maps product write errors to HTTP statuses.
func (h *ProductHandler) writeErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrInvalidPrice):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product price must be greater than zero",
		})
	case errors.Is(err, services.ErrCategoryNotFound):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Category not found",
		})
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	default:
		log.Printf("Product write failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
			"error":   err.Error(),
		})
	}
}

// validationErrorResponse renders validator errors the same way for every
// handler.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
