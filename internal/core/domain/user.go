package domain

import "time"

// User is an employee of a company. The effective scope chain is
// CompanyID -> StoreID (if any) -> RoleID.
type User struct {
	UserID       string  `json:"userID"`
	Name         string  `json:"name"`
	Email        string  `json:"email"` // globally unique
	Phone        string  `json:"phone"` // globally unique
	PasswordHash string  `json:"-"`
	CompanyID    string  `json:"companyID"`
	StoreID      *string `json:"storeID,omitempty"`
	RoleID       string  `json:"roleID"`
	IsActive     bool    `json:"isActive"`
	IsVerified   bool    `json:"isVerified"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
