package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// Config configures the API key middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check.
	ApiKey string

	// Skip lists path prefixes served without a key. "/swagger" covers
	// "/swagger" and everything below "/swagger/", not "/swaggerx".
	Skip []string
}

// New returns middleware rejecting requests without the configured API key.
func New(cfg Config) fiber.Handler {
	skip := make([]string, 0, len(cfg.Skip))
	for _, p := range cfg.Skip {
		skip = append(skip, strings.TrimSuffix(p, "/"))
	}

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" || skipped(skip, c.Path()) {
			return c.Next()
		}

		key := c.Get(Header)
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		return c.Next()
	}
}

func skipped(prefixes []string, path string) bool {
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}
