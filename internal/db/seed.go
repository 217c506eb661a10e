package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"csrhub/internal/models"
)

const (
	DefaultRoleName       = "User"
	DefaultDepartmentName = "General Affairs"
	DefaultDepartmentCode = "GA"
	DefaultCompanyName    = "CSR Hub"
	DefaultCompanyCode    = "CSRHUB"
)

// Seed ensures the default Role, Department, and Company records exist.
// It runs once at startup so request handlers never have to provision
// reference data lazily.
func Seed(database *gorm.DB) error {
	if err := ensureDefaultRole(database); err != nil {
		return fmt.Errorf("seed default role: %w", err)
	}
	if err := ensureDefaultDepartment(database); err != nil {
		return fmt.Errorf("seed default department: %w", err)
	}
	if err := ensureDefaultCompany(database); err != nil {
		return fmt.Errorf("seed default company: %w", err)
	}
	return nil
}

func ensureDefaultRole(database *gorm.DB) error {
	var role models.Role
	err := database.Where("level = ?", models.RoleLevelUser).First(&role).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	role = models.Role{Name: DefaultRoleName, Level: models.RoleLevelUser}
	role.SetPermissionList([]string{"dashboard.view", "programs.view"})
	return database.Create(&role).Error
}

func ensureDefaultDepartment(database *gorm.DB) error {
	var department models.Department
	err := database.Where("code = ?", DefaultDepartmentCode).First(&department).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	department = models.Department{Name: DefaultDepartmentName, Code: DefaultDepartmentCode}
	return database.Create(&department).Error
}

func ensureDefaultCompany(database *gorm.DB) error {
	var count int64
	if err := database.Model(&models.Company{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	company := models.Company{Name: DefaultCompanyName, Code: DefaultCompanyCode, FiscalYearStart: 1}
	return database.Create(&company).Error
}
