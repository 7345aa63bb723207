package dto

import "github.com/bookora/bookora_backend/internal/core/domain"

// CreateRoleRequest creates a role with an explicit permission set.
type CreateRoleRequest struct {
	Name          string   `json:"name" binding:"required"`
	UserLimit     int      `json:"userLimit" binding:"omitempty,min=1"`
	PermissionIDs []string `json:"permissionIDs" binding:"required,dive,uuid"`
}

// UpdateRoleRequest updates a role. A non-nil PermissionIDs replaces the
// role's whole permission set; it is never merged.
type UpdateRoleRequest struct {
	Name          *string   `json:"name"`
	UserLimit     *int      `json:"userLimit" binding:"omitempty,min=1"`
	PermissionIDs *[]string `json:"permissionIDs" binding:"omitempty,dive,uuid"`
}

// AssignRoleVisibilityRequest replaces a role's visibility target set.
type AssignRoleVisibilityRequest struct {
	TargetIDs []string `json:"targetIDs" binding:"required,dive,uuid"`
}

// RoleResponse is the outward representation of a role.
type RoleResponse struct {
	RoleID      string               `json:"roleID"`
	Name        string               `json:"name"`
	CompanyID   string               `json:"companyID"`
	UserLimit   int                  `json:"userLimit"`
	Permissions []PermissionResponse `json:"permissions,omitempty"`
}

// ToRoleResponse converts a domain.Role and its permissions to a RoleResponse.
func ToRoleResponse(r *domain.Role, perms []domain.Permission) RoleResponse {
	return RoleResponse{
		RoleID:      r.RoleID,
		Name:        r.Name,
		CompanyID:   r.CompanyID,
		UserLimit:   r.UserLimit,
		Permissions: ToPermissionResponses(perms),
	}
}
