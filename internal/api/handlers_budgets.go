package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
)

func (handler *Handler) ListBudgets(c *fiber.Ctx) error {
	lines, err := handler.repositories.Budgets.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load budget lines")
	}
	return listResponse(c, lines)
}

func (handler *Handler) CreateBudget(c *fiber.Ctx) error {
	input, message := handler.parseBudgetInput(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	line := models.BudgetLine{
		ProgramID:    input.ProgramID,
		DepartmentID: input.DepartmentID,
		FiscalYear:   input.FiscalYear,
		Amount:       input.Amount,
		SpentAmount:  input.SpentAmount,
		Notes:        input.Notes,
	}
	if err := handler.repositories.Budgets.Create(&line); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create budget line")
	}

	created, err := handler.repositories.Budgets.FindByID(line.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load budget line")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateBudget(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	line, err := handler.repositories.Budgets.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "Budget line not found")
	}

	input, message := handler.parseBudgetInput(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	line.ProgramID = input.ProgramID
	line.DepartmentID = input.DepartmentID
	line.FiscalYear = input.FiscalYear
	line.Amount = input.Amount
	line.SpentAmount = input.SpentAmount
	line.Notes = input.Notes
	if err := handler.repositories.Budgets.Save(&line); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to update budget line")
	}

	updated, err := handler.repositories.Budgets.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load budget line")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteBudget(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if _, err := handler.repositories.Budgets.FindByID(id); err != nil {
		return apiError(c, fiber.StatusNotFound, "Budget line not found")
	}

	if err := handler.repositories.Budgets.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete budget line")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) parseBudgetInput(c *fiber.Ctx) (budgetInput, string) {
	input := budgetInput{}
	if err := c.BodyParser(&input); err != nil {
		return budgetInput{}, "Invalid input"
	}
	input.Notes = strings.TrimSpace(input.Notes)

	if input.ProgramID == 0 || input.DepartmentID == 0 {
		return budgetInput{}, "Program and department are required"
	}
	if input.FiscalYear < 2000 || input.FiscalYear > 2100 {
		return budgetInput{}, "Invalid fiscal year"
	}
	if input.Amount < 0 || input.SpentAmount < 0 {
		return budgetInput{}, "Amounts cannot be negative"
	}
	if input.SpentAmount > input.Amount {
		return budgetInput{}, "Spent amount cannot exceed the allocated amount"
	}

	if _, err := handler.repositories.Programs.FindByID(input.ProgramID); err != nil {
		return budgetInput{}, "Program not found"
	}
	if _, err := handler.repositories.Departments.FindByID(input.DepartmentID); err != nil {
		return budgetInput{}, "Department not found"
	}

	return input, ""
}
