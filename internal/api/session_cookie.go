package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/security"
)

const (
	authCookieName   = "auth-token"
	authCookieMaxAge = int(security.SessionTTL / time.Second)

	contextUserKey = "current_user"
)

// setSessionCookie scopes the signed credential as an HTTP-only,
// same-site-strict cookie. Validity of the value itself is the token
// codec's concern, not the cookie's.
func (handler *Handler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   authCookieMaxAge,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
	})
}

func (handler *Handler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Strict",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func sessionToken(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Cookies(authCookieName))
}
