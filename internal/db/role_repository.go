package db

import (
	"gorm.io/gorm"

	"csrhub/internal/models"
)

type RoleRepository struct {
	database *gorm.DB
}

func NewRoleRepository(database *gorm.DB) *RoleRepository {
	return &RoleRepository{database: database}
}

func (repo *RoleRepository) List() ([]models.Role, error) {
	roles := make([]models.Role, 0)
	if err := repo.database.Order("name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (repo *RoleRepository) FindByID(id uint) (models.Role, error) {
	var role models.Role
	if err := repo.database.First(&role, id).Error; err != nil {
		return models.Role{}, err
	}
	return role, nil
}

// FindDefault returns the seeded registration role.
func (repo *RoleRepository) FindDefault() (models.Role, error) {
	var role models.Role
	if err := repo.database.Where("level = ?", models.RoleLevelUser).Order("id").First(&role).Error; err != nil {
		return models.Role{}, err
	}
	return role, nil
}

type CompanyRepository struct {
	database *gorm.DB
}

func NewCompanyRepository(database *gorm.DB) *CompanyRepository {
	return &CompanyRepository{database: database}
}

// Get returns the single settings record ensured by the seed step.
func (repo *CompanyRepository) Get() (models.Company, error) {
	var company models.Company
	if err := repo.database.Order("id").First(&company).Error; err != nil {
		return models.Company{}, err
	}
	return company, nil
}

func (repo *CompanyRepository) Save(company *models.Company) error {
	return repo.database.Save(company).Error
}
