package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// AdminAuth guards the review API with a shared bearer secret.
type AdminAuth struct {
	token string
}

// NewAdminAuth creates the auth middleware for the given admin token.
func NewAdminAuth(token string) *AdminAuth {
	return &AdminAuth{token: token}
}

// RequireToken rejects requests whose Authorization header does not carry
// the admin bearer token. The comparison is constant-time.
func (m *AdminAuth) RequireToken(c fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)

	supplied, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if subtle.ConstantTimeCompare([]byte(supplied), []byte(m.token)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	return c.Next()
}
