package dto

import (
	"github.com/bookora/bookora_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceDTO is the structured price of a service.
type PriceDTO struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"required,len=3,alpha"`
	TaxIncluded bool            `json:"taxIncluded"`
}

// DepositDTO is the structured deposit policy of a service.
type DepositDTO struct {
	Type  string          `json:"type" binding:"required,oneof=percentage fixed"`
	Value decimal.Decimal `json:"value"`
}

// CreateServiceRequest creates a catalog service within a store.
type CreateServiceRequest struct {
	CategoryID  *string  `json:"categoryID" binding:"omitempty,uuid"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Duration    int      `json:"duration" binding:"required,min=1"`
	Price       PriceDTO `json:"price" binding:"required"`
	Deposit     *DepositDTO `json:"deposit"`
	LaunchDate  string   `json:"launchDate" binding:"omitempty,ddmmyyyy"`
}

// UpdateServiceRequest updates a catalog service.
type UpdateServiceRequest struct {
	CategoryID  *string     `json:"categoryID" binding:"omitempty,uuid"`
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Duration    *int        `json:"duration" binding:"omitempty,min=1"`
	Price       *PriceDTO   `json:"price"`
	Deposit     *DepositDTO `json:"deposit"`
	LaunchDate  *string     `json:"launchDate" binding:"omitempty,ddmmyyyy"`
}

// ServiceResponse is the outward representation of a catalog service.
// Price and deposit stay structured objects end to end.
type ServiceResponse struct {
	ServiceID   string     `json:"serviceID"`
	StoreID     string     `json:"storeID"`
	CategoryID  *string    `json:"categoryID,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"`
	Price       PriceDTO   `json:"price"`
	Deposit     DepositDTO `json:"deposit"`
	LaunchDate  string     `json:"launchDate"`
}

// ToServiceResponse converts a domain.Service to a ServiceResponse DTO.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:   s.ServiceID,
		StoreID:     s.StoreID,
		CategoryID:  s.CategoryID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price: PriceDTO{
			Amount:      s.Price.Amount,
			Currency:    s.Price.Currency,
			TaxIncluded: s.Price.TaxIncluded,
		},
		Deposit: DepositDTO{
			Type:  string(s.Deposit.Type),
			Value: s.Deposit.Value,
		},
		LaunchDate: s.LaunchDate,
	}
}

// ToServiceResponses converts a slice of services.
func ToServiceResponses(services []domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i := range services {
		out[i] = ToServiceResponse(&services[i])
	}
	return out
}
