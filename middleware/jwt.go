package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT issues a bearer token carrying the admin's identifier
func GenerateJWT(secret string, adminID uint, username string) (string, error) {
	claims := jwt.MapClaims{
		"adminId":  adminID,
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Protected returns a middleware that checks for a valid bearer token and
// stores the admin id in the request context
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return Error(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return Error(c, fiber.StatusUnauthorized, "Invalid Authorization header format")
		}

		tokenString := authHeader[len("Bearer "):]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return Error(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["adminId"] == nil {
			return Error(c, fiber.StatusUnauthorized, "Invalid token payload")
		}

		// JWT number claims decode as float64
		adminID := claims["adminId"].(float64)
		c.Locals("adminId", uint(adminID))

		return c.Next()
	}
}
