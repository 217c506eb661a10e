package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
)

func (handler *Handler) ListPrograms(c *fiber.Ctx) error {
	programs, err := handler.repositories.Programs.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load programs")
	}
	return listResponse(c, programs)
}

func (handler *Handler) CreateProgram(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, startDate, endDate, message := handler.parseProgramInput(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	program := models.Program{
		Name:              input.Name,
		Description:       input.Description,
		Status:            input.Status,
		CategoryProgramID: input.CategoryProgramID,
		TypeProgramID:     input.TypeProgramID,
		DepartmentID:      input.DepartmentID,
		OwnerID:           user.ID,
		Budget:            input.Budget,
		StartDate:         startDate,
		EndDate:           endDate,
	}
	if err := handler.repositories.Programs.Create(&program); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create program")
	}

	created, err := handler.repositories.Programs.FindByID(program.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load program")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateProgram(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	program, err := handler.repositories.Programs.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "Program not found")
	}

	input, startDate, endDate, message := handler.parseProgramInput(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	program.Name = input.Name
	program.Description = input.Description
	program.Status = input.Status
	program.CategoryProgramID = input.CategoryProgramID
	program.TypeProgramID = input.TypeProgramID
	program.DepartmentID = input.DepartmentID
	program.Budget = input.Budget
	program.StartDate = startDate
	program.EndDate = endDate
	if err := handler.repositories.Programs.Save(&program); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to update program")
	}

	updated, err := handler.repositories.Programs.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load program")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteProgram(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if _, err := handler.repositories.Programs.FindByID(id); err != nil {
		return apiError(c, fiber.StatusNotFound, "Program not found")
	}

	activities, budgets, err := handler.repositories.Programs.DependentCounts(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete program")
	}
	if activities+budgets > 0 {
		parts := make([]string, 0, 2)
		if activities > 0 {
			parts = append(parts, dependencyPart(activities, "activity"))
		}
		if budgets > 0 {
			parts = append(parts, dependencyPart(budgets, "budget line"))
		}
		return apiErrorWithDetails(c, fiber.StatusBadRequest,
			"Cannot delete program while records reference it", joinDependencySummary(parts))
	}

	if err := handler.repositories.Programs.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete program")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) parseProgramInput(c *fiber.Ctx) (programInput, *time.Time, *time.Time, string) {
	input := programInput{}
	if err := c.BodyParser(&input); err != nil {
		return programInput{}, nil, nil, "Invalid input"
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	if input.Status == "" {
		input.Status = models.ProgramStatusDraft
	}

	if input.Name == "" || input.CategoryProgramID == 0 || input.TypeProgramID == 0 || input.DepartmentID == 0 {
		return programInput{}, nil, nil, "Name, category, type, and department are required"
	}
	if !isValidProgramStatus(input.Status) {
		return programInput{}, nil, nil, "Invalid status"
	}
	if input.Budget < 0 {
		return programInput{}, nil, nil, "Budget cannot be negative"
	}

	if _, err := handler.repositories.CategoryPrograms.FindByID(input.CategoryProgramID); err != nil {
		return programInput{}, nil, nil, "Program category not found"
	}
	if _, err := handler.repositories.TypePrograms.FindByID(input.TypeProgramID); err != nil {
		return programInput{}, nil, nil, "Program type not found"
	}
	if _, err := handler.repositories.Departments.FindByID(input.DepartmentID); err != nil {
		return programInput{}, nil, nil, "Department not found"
	}

	startDate, err := parseOptionalDate(input.StartDate, handler.location)
	if err != nil {
		return programInput{}, nil, nil, "Invalid start date"
	}
	endDate, err := parseOptionalDate(input.EndDate, handler.location)
	if err != nil {
		return programInput{}, nil, nil, "Invalid end date"
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return programInput{}, nil, nil, "End date cannot be before start date"
	}

	return input, startDate, endDate, ""
}
