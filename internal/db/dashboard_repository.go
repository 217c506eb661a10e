package db

import (
	"gorm.io/gorm"

	"csrhub/internal/models"
)

type DashboardRepository struct {
	database *gorm.DB
}

func NewDashboardRepository(database *gorm.DB) *DashboardRepository {
	return &DashboardRepository{database: database}
}

func (repo *DashboardRepository) ProgramCounts() (total int64, active int64, completed int64, err error) {
	if err = repo.database.Model(&models.Program{}).Count(&total).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = repo.database.Model(&models.Program{}).
		Where("status = ?", models.ProgramStatusActive).
		Count(&active).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = repo.database.Model(&models.Program{}).
		Where("status = ?", models.ProgramStatusCompleted).
		Count(&completed).Error; err != nil {
		return 0, 0, 0, err
	}
	return total, active, completed, nil
}

func (repo *DashboardRepository) CountActivities() (int64, error) {
	var count int64
	err := repo.database.Model(&models.Activity{}).Count(&count).Error
	return count, err
}

func (repo *DashboardRepository) CountStakeholders() (int64, error) {
	var count int64
	err := repo.database.Model(&models.Stakeholder{}).Count(&count).Error
	return count, err
}

func (repo *DashboardRepository) CountUsers() (int64, error) {
	var count int64
	err := repo.database.Model(&models.User{}).Count(&count).Error
	return count, err
}

type budgetTotals struct {
	Allocated float64 `gorm:"column:allocated"`
	Spent     float64 `gorm:"column:spent"`
}

func (repo *DashboardRepository) BudgetTotals() (allocated float64, spent float64, err error) {
	totals := budgetTotals{}
	if err = repo.database.Model(&models.BudgetLine{}).
		Select("COALESCE(SUM(amount), 0) AS allocated, COALESCE(SUM(spent_amount), 0) AS spent").
		Scan(&totals).Error; err != nil {
		return 0, 0, err
	}
	return totals.Allocated, totals.Spent, nil
}

type DepartmentProgramCount struct {
	DepartmentID uint   `gorm:"column:department_id" json:"department_id"`
	Department   string `gorm:"column:department" json:"department"`
	Count        int64  `gorm:"column:total" json:"count"`
}

func (repo *DashboardRepository) ProgramsByDepartment() ([]DepartmentProgramCount, error) {
	rows := make([]DepartmentProgramCount, 0)
	if err := repo.database.Model(&models.Program{}).
		Select("programs.department_id AS department_id, departments.name AS department, count(*) AS total").
		Joins("JOIN departments ON departments.id = programs.department_id").
		Group("programs.department_id, departments.name").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
