package dto

import (
	"github.com/bookora/bookora_backend/internal/core/domain"
)

// CreateEmployeeRequest creates a user within the creator's company.
type CreateEmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Phone    string  `json:"phone" binding:"required,e164"`
	Password string  `json:"password" binding:"required,min=8"`
	RoleID   string  `json:"roleID" binding:"required,uuid"`
	StoreID  *string `json:"storeID" binding:"omitempty,uuid"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone" binding:"omitempty,e164"`
	RoleID   *string `json:"roleID" binding:"omitempty,uuid"`
	StoreID  *string `json:"storeID" binding:"omitempty,uuid"`
	IsActive *bool   `json:"isActive"`
}

// UserResponse is the outward representation of a user.
type UserResponse struct {
	UserID     string  `json:"userID"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	CompanyID  string  `json:"companyID"`
	StoreID    *string `json:"storeID,omitempty"`
	RoleID     string  `json:"roleID"`
	IsActive   bool    `json:"isActive"`
	IsVerified bool    `json:"isVerified"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		CompanyID:  u.CompanyID,
		StoreID:    u.StoreID,
		RoleID:     u.RoleID,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
