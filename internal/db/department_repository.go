package db

import (
	"gorm.io/gorm"

	"csrhub/internal/models"
)

type DepartmentRepository struct {
	database *gorm.DB
}

func NewDepartmentRepository(database *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{database: database}
}

// DepartmentSummary carries a department together with the counts of the
// records associated with it, for list screens.
type DepartmentSummary struct {
	models.Department
	UserCount     int64 `json:"user_count"`
	ProgramCount  int64 `json:"program_count"`
	ActivityCount int64 `json:"activity_count"`
	BudgetCount   int64 `json:"budget_count"`
}

func (repo *DepartmentRepository) ListWithCounts() ([]DepartmentSummary, error) {
	departments := make([]models.Department, 0)
	if err := repo.database.Order("name").Find(&departments).Error; err != nil {
		return nil, err
	}

	userCounts, err := repo.countsByColumn(&models.User{}, "department_id")
	if err != nil {
		return nil, err
	}
	programCounts, err := repo.countsByColumn(&models.Program{}, "department_id")
	if err != nil {
		return nil, err
	}
	budgetCounts, err := repo.countsByColumn(&models.BudgetLine{}, "department_id")
	if err != nil {
		return nil, err
	}
	activityCounts, err := repo.activityCountsByDepartment()
	if err != nil {
		return nil, err
	}

	summaries := make([]DepartmentSummary, 0, len(departments))
	for _, department := range departments {
		summaries = append(summaries, DepartmentSummary{
			Department:    department,
			UserCount:     userCounts[department.ID],
			ProgramCount:  programCounts[department.ID],
			ActivityCount: activityCounts[department.ID],
			BudgetCount:   budgetCounts[department.ID],
		})
	}
	return summaries, nil
}

type groupedCount struct {
	GroupID uint  `gorm:"column:group_id"`
	Total   int64 `gorm:"column:total"`
}

func (repo *DepartmentRepository) countsByColumn(model any, column string) (map[uint]int64, error) {
	rows := make([]groupedCount, 0)
	if err := repo.database.Model(model).
		Select(column+" AS group_id, count(*) AS total").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}

// Activities reach a department through their program.
func (repo *DepartmentRepository) activityCountsByDepartment() (map[uint]int64, error) {
	rows := make([]groupedCount, 0)
	if err := repo.database.Model(&models.Activity{}).
		Select("programs.department_id AS group_id, count(*) AS total").
		Joins("JOIN programs ON programs.id = activities.program_id").
		Group("programs.department_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.GroupID] = row.Total
	}
	return counts, nil
}

// FindDefault returns the seeded registration department.
func (repo *DepartmentRepository) FindDefault() (models.Department, error) {
	var department models.Department
	if err := repo.database.Where("code = ?", DefaultDepartmentCode).Order("id").First(&department).Error; err != nil {
		return models.Department{}, err
	}
	return department, nil
}

func (repo *DepartmentRepository) FindByID(id uint) (models.Department, error) {
	var department models.Department
	if err := repo.database.First(&department, id).Error; err != nil {
		return models.Department{}, err
	}
	return department, nil
}

func (repo *DepartmentRepository) NameExists(name string, excludeID uint) (bool, error) {
	return repo.fieldExists("name", name, excludeID)
}

func (repo *DepartmentRepository) CodeExists(code string, excludeID uint) (bool, error) {
	return repo.fieldExists("code", code, excludeID)
}

func (repo *DepartmentRepository) fieldExists(column string, value string, excludeID uint) (bool, error) {
	query := repo.database.Model(&models.Department{}).
		Where("lower(trim("+column+")) = lower(trim(?))", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var matched int64
	if err := query.Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *DepartmentRepository) Create(department *models.Department) error {
	return repo.database.Create(department).Error
}

func (repo *DepartmentRepository) Save(department *models.Department) error {
	return repo.database.Save(department).Error
}

func (repo *DepartmentRepository) Delete(id uint) error {
	return repo.database.Delete(&models.Department{}, id).Error
}

// DependentCounts returns the records blocking deletion of a department.
func (repo *DepartmentRepository) DependentCounts(id uint) (users int64, programs int64, budgets int64, children int64, err error) {
	if err = repo.database.Model(&models.User{}).Where("department_id = ?", id).Count(&users).Error; err != nil {
		return 0, 0, 0, 0, err
	}
	if err = repo.database.Model(&models.Program{}).Where("department_id = ?", id).Count(&programs).Error; err != nil {
		return 0, 0, 0, 0, err
	}
	if err = repo.database.Model(&models.BudgetLine{}).Where("department_id = ?", id).Count(&budgets).Error; err != nil {
		return 0, 0, 0, 0, err
	}
	if err = repo.database.Model(&models.Department{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
		return 0, 0, 0, 0, err
	}
	return users, programs, budgets, children, nil
}
