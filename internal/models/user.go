package models

import (
	"encoding/json"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const (
	RoleLevelAdmin   = "admin"
	RoleLevelManager = "manager"
	RoleLevelUser    = "user"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Status       string     `gorm:"not null;default:active" json:"status"`
	RoleID       uint       `gorm:"not null" json:"role_id"`
	Role         Role       `gorm:"foreignKey:RoleID" json:"role"`
	DepartmentID uint       `gorm:"not null" json:"department_id"`
	Department   Department `gorm:"foreignKey:DepartmentID" json:"department"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (user *User) IsActive() bool {
	return user.Status == StatusActive
}

// Role groups users under a permission set. Permissions is a serialized
// JSON array of capability strings such as "programs.manage".
type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Level       string    `gorm:"not null;default:user" json:"level"`
	Permissions string    `gorm:"not null;default:'[]'" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (role *Role) PermissionList() []string {
	permissions := make([]string, 0)
	if err := json.Unmarshal([]byte(role.Permissions), &permissions); err != nil {
		return []string{}
	}
	return permissions
}

func (role *Role) SetPermissionList(permissions []string) {
	encoded, err := json.Marshal(permissions)
	if err != nil {
		role.Permissions = "[]"
		return
	}
	role.Permissions = string(encoded)
}

// Department is a self-referential hierarchy node. ParentID is nil for
// top-level departments.
type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Code      string    `gorm:"uniqueIndex;not null" json:"code"`
	ParentID  *uint     `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
