package api

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetCompanySettings(c *fiber.Ctx) error {
	company, err := handler.repositories.Company.Get()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load company settings")
	}
	return c.JSON(company)
}

func (handler *Handler) UpdateCompanySettings(c *fiber.Ctx) error {
	input := companyInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid input")
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Code == "" {
		return apiError(c, fiber.StatusBadRequest, "Name and code are required")
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			return apiError(c, fiber.StatusBadRequest, "Invalid email address")
		}
	}
	if input.FiscalYearStart < 1 || input.FiscalYearStart > 12 {
		return apiError(c, fiber.StatusBadRequest, "Fiscal year start must be a month between 1 and 12")
	}

	company, err := handler.repositories.Company.Get()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load company settings")
	}

	company.Name = input.Name
	company.Code = input.Code
	company.Address = strings.TrimSpace(input.Address)
	company.Email = input.Email
	company.Phone = strings.TrimSpace(input.Phone)
	company.Website = strings.TrimSpace(input.Website)
	company.FiscalYearStart = input.FiscalYearStart
	if err := handler.repositories.Company.Save(&company); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to save company settings")
	}
	return c.JSON(company)
}
