package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

// Page routes run through the auth gate: protected paths redirect
// unauthenticated visitors to sign-in, auth pages bounce authenticated
// users back to the root. Health and favicon bypass the gate.
func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/auth/sign-in", handler.GuestOnly, handler.ShowSignInPage)
	app.Get("/auth/sign-up", handler.GuestOnly, handler.ShowSignUpPage)

	app.Get("/", handler.AuthRequired, handler.ShowDashboardPage)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboardPage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/register", handler.Register)
	auth.Post("/logout", handler.Logout)

	master := api.Group("/master", handler.AuthRequired)
	newCategoryProgramResource(handler).mount(master.Group("/category-programs"))
	newTypeProgramResource(handler).mount(master.Group("/type-programs"))
	newStakeholderCategoryResource(handler).mount(master.Group("/stakeholder-categories"))

	departments := master.Group("/departments")
	departments.Get("", handler.ListDepartments)
	departments.Post("", handler.CreateDepartment)
	departments.Put("/:id", handler.UpdateDepartment)
	departments.Delete("/:id", handler.DeleteDepartment)

	users := master.Group("/users")
	users.Get("", handler.ListUsers)
	users.Post("", handler.CreateUser)
	users.Put("/:id", handler.UpdateUser)
	users.Delete("/:id", handler.DeleteUser)

	settings := master.Group("/settings")
	settings.Get("", handler.GetCompanySettings)
	settings.Put("", handler.UpdateCompanySettings)

	programs := api.Group("/programs", handler.AuthRequired)
	programs.Get("", handler.ListPrograms)
	programs.Post("", handler.CreateProgram)
	programs.Put("/:id", handler.UpdateProgram)
	programs.Delete("/:id", handler.DeleteProgram)

	activities := api.Group("/activities", handler.AuthRequired)
	activities.Get("", handler.ListActivities)
	activities.Post("", handler.CreateActivity)
	activities.Put("/:id", handler.UpdateActivity)
	activities.Delete("/:id", handler.DeleteActivity)

	stakeholders := api.Group("/stakeholders", handler.AuthRequired)
	stakeholders.Get("", handler.ListStakeholders)
	stakeholders.Post("", handler.CreateStakeholder)
	stakeholders.Put("/:id", handler.UpdateStakeholder)
	stakeholders.Delete("/:id", handler.DeleteStakeholder)

	budgets := api.Group("/budgets", handler.AuthRequired)
	budgets.Get("", handler.ListBudgets)
	budgets.Post("", handler.CreateBudget)
	budgets.Put("/:id", handler.UpdateBudget)
	budgets.Delete("/:id", handler.DeleteBudget)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/summary", handler.DashboardSummary)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
