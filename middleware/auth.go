// middleware/auth.go
package middleware

import (
	"os"
	"strings"
	"time"

	"quizmaster/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "quizmaster-secret-change-in-production"
	}
	return []byte(secret)
}

func parseBearer(c *fiber.Ctx) (jwt.MapClaims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, fiber.NewError(401, "Missing authorization header")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, fiber.NewError(401, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(401, "Invalid signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(401, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(401, "Invalid token claims")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, fiber.NewError(401, "Token expired")
	}
	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request locals.
func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearer(c)
	if err != nil {
		e := err.(*fiber.Error)
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("role", claims["role"])
	return c.Next()
}

// MasterAuthMiddleware admits only the master account.
func MasterAuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseBearer(c)
	if err != nil {
		e := err.(*fiber.Error)
		return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}

	role, ok := claims["role"].(string)
	if !ok || models.UserRole(role) != models.RoleMaster {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied. Master privileges required."})
	}

	c.Locals("userId", claims["user_id"])
	c.Locals("role", role)
	return c.Next()
}

// GetUserID returns the authenticated caller's user id.
func GetUserID(c *fiber.Ctx) (string, error) {
	userID := c.Locals("userId")
	if userID == nil {
		return "", fiber.NewError(401, "User not authenticated")
	}
	if id, ok := userID.(string); ok && id != "" {
		return id, nil
	}
	return "", fiber.NewError(401, "Invalid user ID format")
}
