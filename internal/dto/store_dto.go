package dto

import "github.com/bookora/bookora_backend/internal/core/domain"

// CreateStoreRequest creates a store managed by the calling user.
// OpenDate is a literal DD-MM-YYYY string, validated but never parsed.
type CreateStoreRequest struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone" binding:"omitempty,e164"`
	OpenDate string `json:"openDate" binding:"omitempty,ddmmyyyy"`
}

// UpdateStoreRequest updates a store's details.
type UpdateStoreRequest struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone" binding:"omitempty,e164"`
	OpenDate *string `json:"openDate" binding:"omitempty,ddmmyyyy"`
}

// StoreResponse is the outward representation of a store.
type StoreResponse struct {
	StoreID   string `json:"storeID"`
	CompanyID string `json:"companyID"`
	ManagerID string `json:"managerID"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	OpenDate  string `json:"openDate"`
}

// ToStoreResponse converts a domain.Store to a StoreResponse DTO.
func ToStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		StoreID:   s.StoreID,
		CompanyID: s.CompanyID,
		ManagerID: s.ManagerID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		OpenDate:  s.OpenDate,
	}
}

// ToStoreResponses converts a slice of stores.
func ToStoreResponses(stores []domain.Store) []StoreResponse {
	out := make([]StoreResponse, len(stores))
	for i := range stores {
		out[i] = ToStoreResponse(&stores[i])
	}
	return out
}

// CreateCategoryRequest creates a category within a store.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest renames a category.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
}

// CategoryResponse is the outward representation of a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	StoreID    string `json:"storeID"`
	Name       string `json:"name"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		StoreID:    c.StoreID,
		Name:       c.Name,
	}
}
