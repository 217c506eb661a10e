package services

import "csrhub/internal/db"

type DashboardService struct {
	dashboard *db.DashboardRepository
}

func NewDashboardService(dashboard *db.DashboardRepository) *DashboardService {
	return &DashboardService{dashboard: dashboard}
}

type ProgramSummary struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

type BudgetSummary struct {
	Allocated   float64 `json:"allocated"`
	Spent       float64 `json:"spent"`
	Utilization float64 `json:"utilization"`
}

type DashboardSummary struct {
	Programs             ProgramSummary              `json:"programs"`
	Activities           int64                       `json:"activities"`
	Stakeholders         int64                       `json:"stakeholders"`
	Users                int64                       `json:"users"`
	Budget               BudgetSummary               `json:"budget"`
	ProgramsByDepartment []db.DepartmentProgramCount `json:"programs_by_department"`
}

func (service *DashboardService) Summary() (DashboardSummary, error) {
	summary := DashboardSummary{}

	total, active, completed, err := service.dashboard.ProgramCounts()
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.Programs = ProgramSummary{Total: total, Active: active, Completed: completed}

	if summary.Activities, err = service.dashboard.CountActivities(); err != nil {
		return DashboardSummary{}, err
	}
	if summary.Stakeholders, err = service.dashboard.CountStakeholders(); err != nil {
		return DashboardSummary{}, err
	}
	if summary.Users, err = service.dashboard.CountUsers(); err != nil {
		return DashboardSummary{}, err
	}

	allocated, spent, err := service.dashboard.BudgetTotals()
	if err != nil {
		return DashboardSummary{}, err
	}
	summary.Budget = BudgetSummary{Allocated: allocated, Spent: spent}
	if allocated > 0 {
		summary.Budget.Utilization = spent / allocated * 100
	}

	if summary.ProgramsByDepartment, err = service.dashboard.ProgramsByDepartment(); err != nil {
		return DashboardSummary{}, err
	}

	return summary, nil
}
