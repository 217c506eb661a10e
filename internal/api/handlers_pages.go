package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowSignInPage(c *fiber.Ctx) error {
	return handler.render(c, "sign_in", fiber.Map{
		"Title": "CSR Hub | Sign In",
	})
}

func (handler *Handler) ShowSignUpPage(c *fiber.Ctx) error {
	return handler.render(c, "sign_up", fiber.Map{
		"Title": "CSR Hub | Sign Up",
	})
}

func (handler *Handler) ShowDashboardPage(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return c.Redirect(signInPath, fiber.StatusSeeOther)
	}
	return handler.render(c, "dashboard", fiber.Map{
		"Title":      "CSR Hub | Dashboard",
		"UserName":   user.Name,
		"Department": user.Department.Name,
	})
}
