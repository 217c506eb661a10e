package api

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
	"csrhub/internal/services"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	input, err := parseLoginInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Email and password are required")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInactiveAccount) {
			return apiError(c, fiber.StatusForbidden, "Account is inactive")
		}
		return apiError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := handler.tokens.Issue(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	handler.setSessionCookie(c, token)

	// Best effort: a failed timestamp update never fails the login.
	if err := handler.authService.RecordLogin(user.ID, time.Now().In(handler.location)); err != nil {
		log.Printf("update last login for user %d: %v", user.ID, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    sanitizedUserPayload(&user),
	})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input, err := parseRegisterInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Name, email, and password are required")
	}
	if err := services.ValidatePassword(input.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	// The default role and department are provisioned by the seed step at
	// startup, never inside this handler.
	role, err := handler.repositories.Roles.FindDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Server is not initialized")
	}
	department, err := handler.repositories.Departments.FindDefault()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Server is not initialized")
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Status:       models.StatusActive,
		RoleID:       role.ID,
		DepartmentID: department.ID,
	}
	if err := handler.authService.Register(&user, input.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return apiError(c, fiber.StatusConflict, "Email is already registered")
		}
		return apiError(c, fiber.StatusInternalServerError, "Failed to create account")
	}
	user.Role = role
	user.Department = department

	token, err := handler.tokens.Issue(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	handler.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
		"data":    sanitizedUserPayload(&user),
	})
}

// Logout clears the cookie unconditionally and succeeds even when no
// session existed.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearSessionCookie(c)
	return c.JSON(fiber.Map{"success": true, "message": "Logged out"})
}

func sanitizedUserPayload(user *models.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role.Name,
		"department": user.Department.Name,
	}
}
