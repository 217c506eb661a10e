package api

import (
	"gorm.io/gorm"

	"csrhub/internal/db"
	"csrhub/internal/services"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.dashboardService = services.NewDashboardService(handler.repositories.Dashboard)
	return handler
}
