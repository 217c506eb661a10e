package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const signInPath = "/auth/sign-in"

// AuthRequired gates every protected route. API paths answer with 401
// JSON; page paths redirect to the sign-in screen. The check runs before
// the handler and never refreshes the token.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}
		return c.Redirect(signInPath, fiber.StatusSeeOther)
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// GuestOnly keeps authenticated users away from the auth pages.
func (handler *Handler) GuestOnly(c *fiber.Ctx) error {
	if _, err := handler.authenticateRequest(c); err == nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Next()
}
