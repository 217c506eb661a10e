package db

import (
	"gorm.io/gorm"

	"csrhub/internal/models"
)

type StakeholderRepository struct {
	database *gorm.DB
}

func NewStakeholderRepository(database *gorm.DB) *StakeholderRepository {
	return &StakeholderRepository{database: database}
}

func (repo *StakeholderRepository) List() ([]models.Stakeholder, error) {
	stakeholders := make([]models.Stakeholder, 0)
	if err := repo.database.
		Preload("StakeholderCategory").
		Order("name").
		Find(&stakeholders).Error; err != nil {
		return nil, err
	}
	return stakeholders, nil
}

func (repo *StakeholderRepository) FindByID(id uint) (models.Stakeholder, error) {
	var stakeholder models.Stakeholder
	if err := repo.database.
		Preload("StakeholderCategory").
		First(&stakeholder, id).Error; err != nil {
		return models.Stakeholder{}, err
	}
	return stakeholder, nil
}

func (repo *StakeholderRepository) NameExists(name string, excludeID uint) (bool, error) {
	query := repo.database.Model(&models.Stakeholder{}).
		Where("lower(trim(name)) = lower(trim(?))", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *StakeholderRepository) Create(stakeholder *models.Stakeholder) error {
	return repo.database.Create(stakeholder).Error
}

func (repo *StakeholderRepository) Save(stakeholder *models.Stakeholder) error {
	return repo.database.Save(stakeholder).Error
}

func (repo *StakeholderRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Stakeholder{}, id).Error
}

// CountByCategory backs the stakeholder-category dependency guard.
func (repo *StakeholderRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Stakeholder{}).
		Where("stakeholder_category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}
