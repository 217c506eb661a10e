package api

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type registerInput struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type masterInput struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type departmentInput struct {
	Name     string `json:"name" form:"name"`
	Code     string `json:"code" form:"code"`
	ParentID *uint  `json:"parent_id" form:"parent_id"`
}

type userInput struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Password     string `json:"password" form:"password"`
	Status       string `json:"status" form:"status"`
	RoleID       uint   `json:"role_id" form:"role_id"`
	DepartmentID uint   `json:"department_id" form:"department_id"`
}

type companyInput struct {
	Name            string `json:"name" form:"name"`
	Code            string `json:"code" form:"code"`
	Address         string `json:"address" form:"address"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Website         string `json:"website" form:"website"`
	FiscalYearStart int    `json:"fiscal_year_start" form:"fiscal_year_start"`
}

type programInput struct {
	Name              string  `json:"name" form:"name"`
	Description       string  `json:"description" form:"description"`
	Status            string  `json:"status" form:"status"`
	CategoryProgramID uint    `json:"category_program_id" form:"category_program_id"`
	TypeProgramID     uint    `json:"type_program_id" form:"type_program_id"`
	DepartmentID      uint    `json:"department_id" form:"department_id"`
	Budget            float64 `json:"budget" form:"budget"`
	StartDate         string  `json:"start_date" form:"start_date"`
	EndDate           string  `json:"end_date" form:"end_date"`
}

type activityInput struct {
	ProgramID uint    `json:"program_id" form:"program_id"`
	Name      string  `json:"name" form:"name"`
	Status    string  `json:"status" form:"status"`
	Location  string  `json:"location" form:"location"`
	Cost      float64 `json:"cost" form:"cost"`
	Notes     string  `json:"notes" form:"notes"`
	Date      string  `json:"date" form:"date"`
}

type stakeholderInput struct {
	Name                  string `json:"name" form:"name"`
	StakeholderCategoryID uint   `json:"stakeholder_category_id" form:"stakeholder_category_id"`
	ContactPerson         string `json:"contact_person" form:"contact_person"`
	Email                 string `json:"email" form:"email"`
	Phone                 string `json:"phone" form:"phone"`
	Address               string `json:"address" form:"address"`
	Notes                 string `json:"notes" form:"notes"`
}

type budgetInput struct {
	ProgramID    uint    `json:"program_id" form:"program_id"`
	DepartmentID uint    `json:"department_id" form:"department_id"`
	FiscalYear   int     `json:"fiscal_year" form:"fiscal_year"`
	Amount       float64 `json:"amount" form:"amount"`
	SpentAmount  float64 `json:"spent_amount" form:"spent_amount"`
	Notes        string  `json:"notes" form:"notes"`
}
