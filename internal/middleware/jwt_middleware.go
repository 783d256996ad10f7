package middleware

import (
	"log"
	"strings"

	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		storeClaims(c, claims)
		return c.Next()
	}
}

// AdminRequired gates a route on the admin role. It must run after
// AuthRequired in the chain.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Admin role required",
			})
		}
		return c.Next()
	}
}

// OptionalAuth extracts the user identity when a valid bearer token is
// present and continues anonymously otherwise. The public product listing
// uses it so the favorites filter can see who is asking without gating the
// route.
func OptionalAuth(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := authService.ValidateToken(parts[1]); err == nil {
				storeClaims(c, claims)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated user's ID from the request context, or 0
// for anonymous requests.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}

// storeClaims copies the identity claims into the Fiber context for
// subsequent handlers. JSON numbers come back as float64 from the parser.
func storeClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	if id, ok := claims["user_id"].(float64); ok {
		c.Locals("user_id", uint(id))
	}
	c.Locals("username", claims["username"])
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
}
