package db

import (
	"time"

	"gorm.io/gorm"

	"csrhub/internal/models"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Preload("Role").
		Preload("Department").
		Order("name").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.
		Preload("Role").
		Preload("Department").
		First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.
		Preload("Role").
		Preload("Department").
		Where("lower(trim(email)) = ?", email).
		First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ExistsByNormalizedEmail reports whether another user already holds the
// email. excludeID skips the user itself on updates; zero means no
// exclusion.
func (repo *UserRepository) ExistsByNormalizedEmail(email string, excludeID uint) (bool, error) {
	query := repo.database.Model(&models.User{}).Where("lower(trim(email)) = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateLastLogin(userID uint, at time.Time) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("last_login_at", at).Error
}

func (repo *UserRepository) Delete(userID uint) error {
	return repo.database.Delete(&models.User{}, userID).Error
}

// DependentCounts returns the records that still reference the user. The
// caller blocks deletion while any count is positive.
func (repo *UserRepository) DependentCounts(userID uint) (programs int64, activities int64, stakeholders int64, err error) {
	if err = repo.database.Model(&models.Program{}).Where("owner_id = ?", userID).Count(&programs).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = repo.database.Model(&models.Activity{}).Where("created_by_id = ?", userID).Count(&activities).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = repo.database.Model(&models.Stakeholder{}).Where("owner_id = ?", userID).Count(&stakeholders).Error; err != nil {
		return 0, 0, 0, err
	}
	return programs, activities, stakeholders, nil
}
