package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
)

// authenticateRequest verifies the session cookie and re-derives the
// user from storage. Any failure collapses into a generic error; the
// middleware never tells the client why a credential was rejected.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawToken := sessionToken(c)
	if rawToken == "" {
		return nil, errors.New("missing auth cookie")
	}

	claims := handler.tokens.Verify(rawToken)
	if claims == nil {
		return nil, errors.New("invalid token")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, errors.New("unknown user")
	}
	if !user.IsActive() {
		return nil, errors.New("inactive account")
	}

	return &user, nil
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
