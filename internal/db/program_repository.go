package db

import (
	"gorm.io/gorm"

	"csrhub/internal/models"
)

type ProgramRepository struct {
	database *gorm.DB
}

func NewProgramRepository(database *gorm.DB) *ProgramRepository {
	return &ProgramRepository{database: database}
}

func (repo *ProgramRepository) List() ([]models.Program, error) {
	programs := make([]models.Program, 0)
	if err := repo.database.
		Preload("CategoryProgram").
		Preload("TypeProgram").
		Preload("Department").
		Order("name").
		Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (repo *ProgramRepository) FindByID(id uint) (models.Program, error) {
	var program models.Program
	if err := repo.database.
		Preload("CategoryProgram").
		Preload("TypeProgram").
		Preload("Department").
		First(&program, id).Error; err != nil {
		return models.Program{}, err
	}
	return program, nil
}

func (repo *ProgramRepository) Create(program *models.Program) error {
	return repo.database.Create(program).Error
}

func (repo *ProgramRepository) Save(program *models.Program) error {
	return repo.database.Save(program).Error
}

func (repo *ProgramRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Program{}, id).Error
}

// DependentCounts returns the records blocking deletion of a program.
func (repo *ProgramRepository) DependentCounts(id uint) (activities int64, budgets int64, err error) {
	if err = repo.database.Model(&models.Activity{}).Where("program_id = ?", id).Count(&activities).Error; err != nil {
		return 0, 0, err
	}
	if err = repo.database.Model(&models.BudgetLine{}).Where("program_id = ?", id).Count(&budgets).Error; err != nil {
		return 0, 0, err
	}
	return activities, budgets, nil
}

// CountByCategory backs the category-program dependency guard.
func (repo *ProgramRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Program{}).Where("category_program_id = ?", categoryID).Count(&count).Error
	return count, err
}

// CountByType backs the type-program dependency guard.
func (repo *ProgramRepository) CountByType(typeID uint) (int64, error) {
	var count int64
	err := repo.database.Model(&models.Program{}).Where("type_program_id = ?", typeID).Count(&count).Error
	return count, err
}

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) List() ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.
		Preload("Program").
		Order("date DESC, id DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) FindByID(id uint) (models.Activity, error) {
	var activity models.Activity
	if err := repo.database.Preload("Program").First(&activity, id).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return repo.database.Create(activity).Error
}

func (repo *ActivityRepository) Save(activity *models.Activity) error {
	return repo.database.Save(activity).Error
}

func (repo *ActivityRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Activity{}, id).Error
}

type BudgetRepository struct {
	database *gorm.DB
}

func NewBudgetRepository(database *gorm.DB) *BudgetRepository {
	return &BudgetRepository{database: database}
}

func (repo *BudgetRepository) List() ([]models.BudgetLine, error) {
	lines := make([]models.BudgetLine, 0)
	if err := repo.database.
		Preload("Program").
		Preload("Department").
		Order("fiscal_year DESC, id").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (repo *BudgetRepository) FindByID(id uint) (models.BudgetLine, error) {
	var line models.BudgetLine
	if err := repo.database.
		Preload("Program").
		Preload("Department").
		First(&line, id).Error; err != nil {
		return models.BudgetLine{}, err
	}
	return line, nil
}

func (repo *BudgetRepository) Create(line *models.BudgetLine) error {
	return repo.database.Create(line).Error
}

func (repo *BudgetRepository) Save(line *models.BudgetLine) error {
	return repo.database.Save(line).Error
}

func (repo *BudgetRepository) Delete(id uint) error {
	return repo.database.Delete(&models.BudgetLine{}, id).Error
}
