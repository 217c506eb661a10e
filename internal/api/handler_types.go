package api

import (
	"html/template"
	"time"

	"gorm.io/gorm"

	"csrhub/internal/db"
	"csrhub/internal/security"
	"csrhub/internal/services"
)

type Handler struct {
	db               *gorm.DB
	tokens           *security.Codec
	location         *time.Location
	cookieSecure     bool
	templates        map[string]*template.Template
	repositories     *db.Repositories
	authService      *services.AuthService
	dashboardService *services.DashboardService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) (*Handler, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:           database,
		tokens:       security.NewCodec([]byte(secretKey)),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
	}
	return handler.withDependencies(database), nil
}
