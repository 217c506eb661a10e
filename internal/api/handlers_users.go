package api

import (
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"csrhub/internal/models"
	"csrhub/internal/services"
)

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load users")
	}
	return listResponse(c, users)
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	input, message := handler.parseUserInput(c, 0, true)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to secure password")
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		Status:       input.Status,
		RoleID:       input.RoleID,
		DepartmentID: input.DepartmentID,
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Email already exists")
	}

	created, err := handler.repositories.Users.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	user, err := handler.repositories.Users.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "User not found")
	}

	input, message := handler.parseUserInput(c, id, false)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user.Name = input.Name
	user.Email = input.Email
	user.Status = input.Status
	user.RoleID = input.RoleID
	user.DepartmentID = input.DepartmentID
	if input.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "Failed to secure password")
		}
		user.PasswordHash = string(passwordHash)
	}
	if err := handler.repositories.Users.Save(&user); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Email already exists")
	}

	updated, err := handler.repositories.Users.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load user")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if _, err := handler.repositories.Users.FindByID(id); err != nil {
		return apiError(c, fiber.StatusNotFound, "User not found")
	}

	programs, activities, stakeholders, err := handler.repositories.Users.DependentCounts(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if programs+activities+stakeholders > 0 {
		parts := make([]string, 0, 3)
		if programs > 0 {
			parts = append(parts, dependencyPart(programs, "program"))
		}
		if activities > 0 {
			parts = append(parts, dependencyPart(activities, "activity"))
		}
		if stakeholders > 0 {
			parts = append(parts, dependencyPart(stakeholders, "stakeholder"))
		}
		return apiErrorWithDetails(c, fiber.StatusBadRequest,
			"Cannot delete user while records reference them", joinDependencySummary(parts))
	}

	if err := handler.repositories.Users.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	return c.JSON(fiber.Map{"success": true})
}

// parseUserInput validates the admin user form. passwordRequired is true
// on create; on update an empty password means "keep the current one".
func (handler *Handler) parseUserInput(c *fiber.Ctx, excludeID uint, passwordRequired bool) (userInput, string) {
	input := userInput{}
	if err := c.BodyParser(&input); err != nil {
		return userInput{}, "Invalid input"
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Password = strings.TrimSpace(input.Password)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	if input.Status == "" {
		input.Status = models.StatusActive
	}

	if input.Name == "" || input.Email == "" || input.RoleID == 0 || input.DepartmentID == 0 {
		return userInput{}, "Name, email, role, and department are required"
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return userInput{}, "Invalid email address"
	}
	if !isValidUserStatus(input.Status) {
		return userInput{}, "Invalid status"
	}
	if passwordRequired && input.Password == "" {
		return userInput{}, "Password is required"
	}
	if input.Password != "" {
		if err := services.ValidatePassword(input.Password); err != nil {
			return userInput{}, "Password must be at least 8 characters"
		}
	}

	if _, err := handler.repositories.Roles.FindByID(input.RoleID); err != nil {
		return userInput{}, "Role not found"
	}
	if _, err := handler.repositories.Departments.FindByID(input.DepartmentID); err != nil {
		return userInput{}, "Department not found"
	}

	taken, err := handler.repositories.Users.ExistsByNormalizedEmail(input.Email, excludeID)
	if err != nil {
		return userInput{}, "Failed to validate user"
	}
	if taken {
		return userInput{}, "Email already exists"
	}

	return input, ""
}
