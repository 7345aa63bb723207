package domain

// Store is a physical location owned by a company and run by a manager.
// Categories, services and clients all hang off a store.
type Store struct {
	StoreID   string `json:"storeID"`
	CompanyID string `json:"companyID"`
	ManagerID string `json:"managerID"` // the owning User; direct-owner authorization predicate
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	OpenDate  string `json:"openDate"` // literal DD-MM-YYYY string, validated by regex, never parsed
	AuditFields
}

// Category groups services within a single store.
type Category struct {
	CategoryID string `json:"categoryID"`
	StoreID    string `json:"storeID"`
	Name       string `json:"name"`
	AuditFields
}
