package db

import (
	"gorm.io/gorm"

	"csrhub/internal/models"
)

type Repositories struct {
	Users                 *UserRepository
	Roles                 *RoleRepository
	Departments           *DepartmentRepository
	Company               *CompanyRepository
	CategoryPrograms      *MasterRepository[models.CategoryProgram]
	TypePrograms          *MasterRepository[models.TypeProgram]
	StakeholderCategories *MasterRepository[models.StakeholderCategory]
	Programs              *ProgramRepository
	Activities            *ActivityRepository
	Budgets               *BudgetRepository
	Stakeholders          *StakeholderRepository
	Dashboard             *DashboardRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:                 NewUserRepository(database),
		Roles:                 NewRoleRepository(database),
		Departments:           NewDepartmentRepository(database),
		Company:               NewCompanyRepository(database),
		CategoryPrograms:      NewMasterRepository[models.CategoryProgram](database),
		TypePrograms:          NewMasterRepository[models.TypeProgram](database),
		StakeholderCategories: NewMasterRepository[models.StakeholderCategory](database),
		Programs:              NewProgramRepository(database),
		Activities:            NewActivityRepository(database),
		Budgets:               NewBudgetRepository(database),
		Stakeholders:          NewStakeholderRepository(database),
		Dashboard:             NewDashboardRepository(database),
	}
}
