package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// User roles. An employee inherits the tenant database of its company
// (a business_owner user); every other role carries its own database name.
const (
	RoleNoPermission  = "no_permission"
	RoleEmployee      = "employee"
	RoleBusinessOwner = "business_owner"
	RoleAdmin         = "admin"
	RoleSupervisor    = "supervisor"
)

type User struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username              string    `gorm:"uniqueIndex" json:"username"`
	Password              string    `json:"-"`
	Role                  string    `gorm:"index" json:"role"`
	Permissions           datatypes.JSON `json:"permissions"`
	CompanyID             *uuid.UUID `json:"company_id"`
	Database              string     `json:"database"`
	FullName              string     `json:"full_name"`
	Email                 string     `gorm:"uniqueIndex" json:"email"`
	PhoneNumber           string     `json:"phone_number"`
	CompanyName           string     `json:"company_name"`
	Country               string     `json:"country"`
	City                  string     `json:"city"`
	Address               string     `json:"address"`
	Status                string     `gorm:"default:active" json:"status"`
	LastLogin             *time.Time `json:"last_login"`
	AccountExpirationDate *time.Time `json:"account_expiration_date"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
