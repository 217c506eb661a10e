package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
)

func (handler *Handler) ListActivities(c *fiber.Ctx) error {
	activities, err := handler.repositories.Activities.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load activities")
	}
	return listResponse(c, activities)
}

func (handler *Handler) CreateActivity(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, date, message := handler.parseActivityInput(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	activity := models.Activity{
		ProgramID:   input.ProgramID,
		Name:        input.Name,
		Status:      input.Status,
		Location:    input.Location,
		Cost:        input.Cost,
		Notes:       input.Notes,
		Date:        date,
		CreatedByID: user.ID,
	}
	if err := handler.repositories.Activities.Create(&activity); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create activity")
	}

	created, err := handler.repositories.Activities.FindByID(activity.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load activity")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateActivity(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	activity, err := handler.repositories.Activities.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "Activity not found")
	}

	input, date, message := handler.parseActivityInput(c)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	activity.ProgramID = input.ProgramID
	activity.Name = input.Name
	activity.Status = input.Status
	activity.Location = input.Location
	activity.Cost = input.Cost
	activity.Notes = input.Notes
	activity.Date = date
	if err := handler.repositories.Activities.Save(&activity); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}

	updated, err := handler.repositories.Activities.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load activity")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteActivity(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if _, err := handler.repositories.Activities.FindByID(id); err != nil {
		return apiError(c, fiber.StatusNotFound, "Activity not found")
	}

	if err := handler.repositories.Activities.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete activity")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) parseActivityInput(c *fiber.Ctx) (activityInput, *time.Time, string) {
	input := activityInput{}
	if err := c.BodyParser(&input); err != nil {
		return activityInput{}, nil, "Invalid input"
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)
	input.Notes = strings.TrimSpace(input.Notes)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	if input.Status == "" {
		input.Status = models.ActivityStatusPlanned
	}

	if input.Name == "" || input.ProgramID == 0 {
		return activityInput{}, nil, "Name and program are required"
	}
	if !isValidActivityStatus(input.Status) {
		return activityInput{}, nil, "Invalid status"
	}
	if input.Cost < 0 {
		return activityInput{}, nil, "Cost cannot be negative"
	}

	if _, err := handler.repositories.Programs.FindByID(input.ProgramID); err != nil {
		return activityInput{}, nil, "Program not found"
	}

	date, err := parseOptionalDate(input.Date, handler.location)
	if err != nil {
		return activityInput{}, nil, "Invalid date"
	}

	return input, date, ""
}
