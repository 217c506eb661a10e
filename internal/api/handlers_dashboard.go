package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) DashboardSummary(c *fiber.Ctx) error {
	summary, err := handler.dashboardService.Summary()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load dashboard summary")
	}
	return c.JSON(fiber.Map{"data": summary})
}
