package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/models"
)

func (handler *Handler) ListDepartments(c *fiber.Ctx) error {
	departments, err := handler.repositories.Departments.ListWithCounts()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load departments")
	}
	return listResponse(c, departments)
}

func (handler *Handler) CreateDepartment(c *fiber.Ctx) error {
	input, message := handler.parseDepartmentInput(c, 0)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	department := models.Department{Name: input.Name, Code: input.Code, ParentID: input.ParentID}
	if err := handler.repositories.Departments.Create(&department); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Department name or code already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(department)
}

func (handler *Handler) UpdateDepartment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	department, err := handler.repositories.Departments.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "Department not found")
	}

	input, message := handler.parseDepartmentInput(c, id)
	if message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	department.Name = input.Name
	department.Code = input.Code
	department.ParentID = input.ParentID
	if err := handler.repositories.Departments.Save(&department); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Department name or code already exists")
	}
	return c.JSON(department)
}

func (handler *Handler) DeleteDepartment(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if _, err := handler.repositories.Departments.FindByID(id); err != nil {
		return apiError(c, fiber.StatusNotFound, "Department not found")
	}

	users, programs, budgets, children, err := handler.repositories.Departments.DependentCounts(id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete department")
	}
	if users+programs+budgets+children > 0 {
		parts := make([]string, 0, 4)
		if users > 0 {
			parts = append(parts, dependencyPart(users, "user"))
		}
		if programs > 0 {
			parts = append(parts, dependencyPart(programs, "program"))
		}
		if budgets > 0 {
			parts = append(parts, dependencyPart(budgets, "budget line"))
		}
		if children > 0 {
			parts = append(parts, dependencyPart(children, "sub-department"))
		}
		return apiErrorWithDetails(c, fiber.StatusBadRequest,
			"Cannot delete department while it is in use", joinDependencySummary(parts))
	}

	if err := handler.repositories.Departments.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete department")
	}
	return c.JSON(fiber.Map{"success": true})
}

// parseDepartmentInput validates required fields, the optional parent,
// and name/code uniqueness (excluding excludeID on updates). It returns
// an error message usable directly in a 400 response.
func (handler *Handler) parseDepartmentInput(c *fiber.Ctx, excludeID uint) (departmentInput, string) {
	input := departmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return departmentInput{}, "Invalid input"
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Name == "" || input.Code == "" {
		return departmentInput{}, "Name and code are required"
	}

	if input.ParentID != nil {
		if excludeID != 0 && *input.ParentID == excludeID {
			return departmentInput{}, "Department cannot be its own parent"
		}
		if _, err := handler.repositories.Departments.FindByID(*input.ParentID); err != nil {
			return departmentInput{}, "Parent department not found"
		}
	}

	nameTaken, err := handler.repositories.Departments.NameExists(input.Name, excludeID)
	if err != nil {
		return departmentInput{}, "Failed to validate department"
	}
	if nameTaken {
		return departmentInput{}, "Department name already exists"
	}

	codeTaken, err := handler.repositories.Departments.CodeExists(input.Code, excludeID)
	if err != nil {
		return departmentInput{}, "Failed to validate department"
	}
	if codeTaken {
		return departmentInput{}, "Department code already exists"
	}

	return input, ""
}
