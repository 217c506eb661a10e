package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// apiError is the uniform failure shape: {"error": message} with an
// optional human-readable details string. Nothing internal leaks here.
func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiErrorWithDetails(c *fiber.Ctx, status int, message string, details string) error {
	return c.Status(status).JSON(fiber.Map{"error": message, "details": details})
}

func listResponse[T any](c *fiber.Ctx, records []T) error {
	return c.JSON(fiber.Map{"data": records, "total": len(records)})
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

// joinDependencySummary renders the non-zero parts of a dependency guard
// report, e.g. "referenced by 2 user(s), 1 program(s)".
func joinDependencySummary(parts []string) string {
	return "referenced by " + strings.Join(parts, ", ")
}

func dependencyPart(count int64, noun string) string {
	return strconv.FormatInt(count, 10) + " " + noun + "(s)"
}
