package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"csrhub/internal/db"
	"csrhub/internal/models"
)

// masterResource is the uniform CRUD contract shared by every reference
// data screen. Each operation layers the same checks in order: required
// fields (400), existence by id (404), name uniqueness excluding self
// (400), and for delete a zero dependent-record count (400 with a
// readable summary). Success shapes follow the per-route conventions:
// list {data,total}, create 201 entity, update 200 entity, delete
// {success:true}.
type masterResource[T any] struct {
	handler    *Handler
	repo       *db.MasterRepository[T]
	label      string
	build      func(input masterInput) T
	apply      func(record *T, input masterInput)
	dependents func(handler *Handler, id uint) (int64, string, error)
}

func (resource *masterResource[T]) mount(router fiber.Router) {
	router.Get("", resource.list)
	router.Post("", resource.create)
	router.Put("/:id", resource.update)
	router.Delete("/:id", resource.delete)
}

func (resource *masterResource[T]) list(c *fiber.Ctx) error {
	records, err := resource.repo.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load "+resource.label+" records")
	}
	return listResponse(c, records)
}

func (resource *masterResource[T]) create(c *fiber.Ctx) error {
	input, ok := parseMasterInput(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Name is required")
	}

	exists, err := resource.repo.NameExists(input.Name, 0)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to create "+resource.label)
	}
	if exists {
		return apiError(c, fiber.StatusBadRequest, resource.label+" name already exists")
	}

	record := resource.build(input)
	if err := resource.repo.Create(&record); err != nil {
		// The unique index is the backstop for concurrent creates.
		return apiError(c, fiber.StatusBadRequest, resource.label+" name already exists")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (resource *masterResource[T]) update(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}
	input, ok := parseMasterInput(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Name is required")
	}

	record, err := resource.repo.FindByID(id)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, resource.label+" not found")
	}

	exists, err := resource.repo.NameExists(input.Name, id)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to update "+resource.label)
	}
	if exists {
		return apiError(c, fiber.StatusBadRequest, resource.label+" name already exists")
	}

	resource.apply(record, input)
	if err := resource.repo.Save(record); err != nil {
		return apiError(c, fiber.StatusBadRequest, resource.label+" name already exists")
	}
	return c.JSON(record)
}

func (resource *masterResource[T]) delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if _, err := resource.repo.FindByID(id); err != nil {
		return apiError(c, fiber.StatusNotFound, resource.label+" not found")
	}

	if resource.dependents != nil {
		count, summary, err := resource.dependents(resource.handler, id)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "Failed to delete "+resource.label)
		}
		if count > 0 {
			return apiErrorWithDetails(c, fiber.StatusBadRequest,
				"Cannot delete "+resource.label+" while it is in use", summary)
		}
	}

	if err := resource.repo.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete "+resource.label)
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseMasterInput(c *fiber.Ctx) (masterInput, bool) {
	input := masterInput{}
	if err := c.BodyParser(&input); err != nil {
		return masterInput{}, false
	}
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" {
		return masterInput{}, false
	}
	return input, true
}

func newCategoryProgramResource(handler *Handler) *masterResource[models.CategoryProgram] {
	return &masterResource[models.CategoryProgram]{
		handler: handler,
		repo:    handler.repositories.CategoryPrograms,
		label:   "Program category",
		build: func(input masterInput) models.CategoryProgram {
			return models.CategoryProgram{Name: input.Name, Description: input.Description}
		},
		apply: func(record *models.CategoryProgram, input masterInput) {
			record.Name = input.Name
			record.Description = input.Description
		},
		dependents: func(handler *Handler, id uint) (int64, string, error) {
			count, err := handler.repositories.Programs.CountByCategory(id)
			if err != nil {
				return 0, "", err
			}
			return count, joinDependencySummary([]string{dependencyPart(count, "program")}), nil
		},
	}
}

func newTypeProgramResource(handler *Handler) *masterResource[models.TypeProgram] {
	return &masterResource[models.TypeProgram]{
		handler: handler,
		repo:    handler.repositories.TypePrograms,
		label:   "Program type",
		build: func(input masterInput) models.TypeProgram {
			return models.TypeProgram{Name: input.Name, Description: input.Description}
		},
		apply: func(record *models.TypeProgram, input masterInput) {
			record.Name = input.Name
			record.Description = input.Description
		},
		dependents: func(handler *Handler, id uint) (int64, string, error) {
			count, err := handler.repositories.Programs.CountByType(id)
			if err != nil {
				return 0, "", err
			}
			return count, joinDependencySummary([]string{dependencyPart(count, "program")}), nil
		},
	}
}

func newStakeholderCategoryResource(handler *Handler) *masterResource[models.StakeholderCategory] {
	return &masterResource[models.StakeholderCategory]{
		handler: handler,
		repo:    handler.repositories.StakeholderCategories,
		label:   "Stakeholder category",
		build: func(input masterInput) models.StakeholderCategory {
			return models.StakeholderCategory{Name: input.Name, Description: input.Description}
		},
		apply: func(record *models.StakeholderCategory, input masterInput) {
			record.Name = input.Name
			record.Description = input.Description
		},
		dependents: func(handler *Handler, id uint) (int64, string, error) {
			count, err := handler.repositories.Stakeholders.CountByCategory(id)
			if err != nil {
				return 0, "", err
			}
			return count, joinDependencySummary([]string{dependencyPart(count, "stakeholder")}), nil
		},
	}
}
