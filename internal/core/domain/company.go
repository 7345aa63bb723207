package domain

// Company is the tenant root. Every role, store and user belongs to exactly
// one company; nothing crosses the company boundary.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"` // globally unique
	Domain    string `json:"domain"`
	UserLimit int    `json:"userLimit"` // cap on total users, checked at creation time only
	AuditFields
}
