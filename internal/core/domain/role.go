package domain

// Well-known role names used in name-based policy checks (visibility
// assignment, employee dropdown filtering). Any authorization decision made
// by comparing a role name must use these constants.
const (
	RoleSuperAdmin = "SuperAdmin"
	RoleAdmin      = "Admin"
	RoleManager    = "Manager"
	RoleEmployee   = "Employee"
)

// Role groups users under a named permission set within a company.
type Role struct {
	RoleID    string `json:"roleID"`
	Name      string `json:"name"`
	CompanyID string `json:"companyID"`
	UserLimit int    `json:"userLimit"` // cap on users holding this role, checked at creation time only
	AuditFields
}

// Permission is a global catalog entry. Identity is the (module, action)
// pair; both are opaque strings and no relationship between actions is ever
// inferred.
type Permission struct {
	PermissionID string `json:"permissionID"`
	Module       string `json:"module"`
	Action       string `json:"action"`
}

// RolePermission grants the capability module.action to all users holding
// the role.
type RolePermission struct {
	RoleID       string `json:"roleID"`
	PermissionID string `json:"permissionID"`
}

// Permission modules checked by the services. The catalog seeded in the
// database may carry more modules than are enforced in code.
const (
	ModuleUser        = "user"
	ModuleRole        = "role"
	ModuleStore       = "store"
	ModuleCategory    = "category"
	ModuleService     = "service"
	ModuleClient      = "client"
	ModuleAppointment = "appointment"
	ModuleVisibility  = "visibility"
)

// Permission actions.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionAssign = "assign"
)
