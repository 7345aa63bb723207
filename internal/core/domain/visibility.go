package domain

// RoleUserVisibility declares that any user holding RoleID may see TargetUserID.
type RoleUserVisibility struct {
	RoleID       string `json:"roleID"`
	TargetUserID string `json:"targetUserID"`
}

// EmployeeVisibility declares that ViewerUserID may see TargetUserID,
// independent of roles. Typically manager -> employees.
type EmployeeVisibility struct {
	ViewerUserID string `json:"viewerUserID"`
	TargetUserID string `json:"targetUserID"`
}
