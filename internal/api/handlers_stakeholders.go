package api

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
)

func (handler *Handler) ListStakeholders(c *fiber.Ctx) error {
	stakeholders, err := handler.repositories.Stakeholders.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load stakeholders")
	}
	return listResponse(c, stakeholders)
}

func (handler *Handler) CreateStakeholder(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, message := handler.parseStakeholderInput(c, 0)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	stakeholder := models.Stakeholder{
		Name:                  input.Name,
		StakeholderCategoryID: input.StakeholderCategoryID,
		ContactPerson:         input.ContactPerson,
		Email:                 input.Email,
		Phone:                 input.Phone,
		Address:               input.Address,
		Notes:                 input.Notes,
		OwnerID:               user.ID,
	}
	if err := handler.repositories.Stakeholders.Create(&stakeholder); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Stakeholder name already exists")
	}

	created, err := handler.repositories.Stakeholders.FindByID(stakeholder.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load stakeholder")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateStakeholder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	stakeholder, err := handler.repositories.Stakeholders.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "Stakeholder not found")
	}

	input, message := handler.parseStakeholderInput(c, id)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	stakeholder.Name = input.Name
	stakeholder.StakeholderCategoryID = input.StakeholderCategoryID
	stakeholder.ContactPerson = input.ContactPerson
	stakeholder.Email = input.Email
	stakeholder.Phone = input.Phone
	stakeholder.Address = input.Address
	stakeholder.Notes = input.Notes
	if err := handler.repositories.Stakeholders.Save(&stakeholder); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Stakeholder name already exists")
	}

	updated, err := handler.repositories.Stakeholders.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load stakeholder")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteStakeholder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if _, err := handler.repositories.Stakeholders.FindByID(id); err != nil {
		return apiError(c, fiber.StatusNotFound, "Stakeholder not found")
	}

	if err := handler.repositories.Stakeholders.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete stakeholder")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (handler *Handler) parseStakeholderInput(c *fiber.Ctx, excludeID uint) (stakeholderInput, string) {
	input := stakeholderInput{}
	if err := c.BodyParser(&input); err != nil {
		return stakeholderInput{}, "Invalid input"
	}

	input.Name = strings.TrimSpace(input.Name)
	input.ContactPerson = strings.TrimSpace(input.ContactPerson)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.Name == "" || input.StakeholderCategoryID == 0 {
		return stakeholderInput{}, "Name and category are required"
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			return stakeholderInput{}, "Invalid email address"
		}
	}

	if _, err := handler.repositories.StakeholderCategories.FindByID(input.StakeholderCategoryID); err != nil {
		return stakeholderInput{}, "Stakeholder category not found"
	}

	taken, err := handler.repositories.Stakeholders.NameExists(input.Name, excludeID)
	if err != nil {
		return stakeholderInput{}, "Failed to validate stakeholder"
	}
	if taken {
		return stakeholderInput{}, "Stakeholder name already exists"
	}

	return input, ""
}
