package api

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
)

func parseLoginInput(c *fiber.Ctx) (loginInput, error) {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return loginInput{}, err
	}

	input.Email = normalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	if input.Email == "" || input.Password == "" {
		return loginInput{}, errors.New("missing credentials")
	}

	return input, nil
}

func parseRegisterInput(c *fiber.Ctx) (registerInput, error) {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return registerInput{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return registerInput{}, errors.New("missing fields")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return registerInput{}, errors.New("invalid email")
	}

	return input, nil
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func isValidUserStatus(status string) bool {
	switch status {
	case models.StatusActive, models.StatusInactive:
		return true
	default:
		return false
	}
}

func isValidProgramStatus(status string) bool {
	switch status {
	case models.ProgramStatusDraft, models.ProgramStatusActive,
		models.ProgramStatusCompleted, models.ProgramStatusCancelled:
		return true
	default:
		return false
	}
}

func isValidActivityStatus(status string) bool {
	switch status {
	case models.ActivityStatusPlanned, models.ActivityStatusOngoing,
		models.ActivityStatusCompleted, models.ActivityStatusCancelled:
		return true
	default:
		return false
	}
}

// parseOptionalDate accepts an empty string or a YYYY-MM-DD value.
func parseOptionalDate(raw string, location *time.Location) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", trimmed, location)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
