package models

import "time"

const (
	ProgramStatusDraft     = "draft"
	ProgramStatusActive    = "active"
	ProgramStatusCompleted = "completed"
	ProgramStatusCancelled = "cancelled"
)

const (
	ActivityStatusPlanned   = "planned"
	ActivityStatusOngoing   = "ongoing"
	ActivityStatusCompleted = "completed"
	ActivityStatusCancelled = "cancelled"
)

type Program struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	Name              string          `gorm:"not null" json:"name"`
	Description       string          `json:"description"`
	Status            string          `gorm:"not null;default:draft" json:"status"`
	CategoryProgramID uint            `gorm:"not null" json:"category_program_id"`
	CategoryProgram   CategoryProgram `gorm:"foreignKey:CategoryProgramID" json:"category_program"`
	TypeProgramID     uint            `gorm:"not null" json:"type_program_id"`
	TypeProgram       TypeProgram     `gorm:"foreignKey:TypeProgramID" json:"type_program"`
	DepartmentID      uint            `gorm:"not null" json:"department_id"`
	Department        Department      `gorm:"foreignKey:DepartmentID" json:"department"`
	OwnerID           uint            `gorm:"not null" json:"owner_id"`
	Budget            float64         `gorm:"not null;default:0" json:"budget"`
	StartDate         *time.Time      `json:"start_date"`
	EndDate           *time.Time      `json:"end_date"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type Activity struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProgramID   uint       `gorm:"not null" json:"program_id"`
	Program     Program    `gorm:"foreignKey:ProgramID" json:"program"`
	Name        string     `gorm:"not null" json:"name"`
	Status      string     `gorm:"not null;default:planned" json:"status"`
	Location    string     `json:"location"`
	Cost        float64    `gorm:"not null;default:0" json:"cost"`
	Notes       string     `json:"notes"`
	Date        *time.Time `json:"date"`
	CreatedByID uint       `gorm:"not null" json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Stakeholder struct {
	ID                    uint                `gorm:"primaryKey" json:"id"`
	Name                  string              `gorm:"not null" json:"name"`
	StakeholderCategoryID uint                `gorm:"not null" json:"stakeholder_category_id"`
	StakeholderCategory   StakeholderCategory `gorm:"foreignKey:StakeholderCategoryID" json:"stakeholder_category"`
	ContactPerson         string              `json:"contact_person"`
	Email                 string              `json:"email"`
	Phone                 string              `json:"phone"`
	Address               string              `json:"address"`
	Notes                 string              `json:"notes"`
	OwnerID               uint                `gorm:"not null" json:"owner_id"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

type BudgetLine struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProgramID    uint       `gorm:"not null" json:"program_id"`
	Program      Program    `gorm:"foreignKey:ProgramID" json:"program"`
	DepartmentID uint       `gorm:"not null" json:"department_id"`
	Department   Department `gorm:"foreignKey:DepartmentID" json:"department"`
	FiscalYear   int        `gorm:"not null" json:"fiscal_year"`
	Amount       float64    `gorm:"not null;default:0" json:"amount"`
	SpentAmount  float64    `gorm:"not null;default:0" json:"spent_amount"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
