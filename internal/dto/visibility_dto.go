package dto

// AssignVisibilityRequest replaces the viewer's full direct visibility set.
type AssignVisibilityRequest struct {
	ViewerID  string   `json:"viewerID" binding:"required,uuid"`
	TargetIDs []string `json:"targetIDs" binding:"required,dive,uuid"`
}

// VisibilityResponse lists the users a viewer can see.
type VisibilityResponse struct {
	ViewerID string         `json:"viewerID"`
	Targets  []UserResponse `json:"targets"`
}
