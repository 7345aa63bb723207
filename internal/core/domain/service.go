package domain

import "github.com/shopspring/decimal"

// DepositType discriminates how a deposit value is interpreted.
type DepositType string

const (
	DepositPercentage DepositType = "percentage"
	DepositFixed      DepositType = "fixed"
)

// Price is the structured price of a service. It round-trips as a structured
// object, never flattened into scalars.
type Price struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"` // 3-letter code
	TaxIncluded bool            `json:"taxIncluded"`
}

// Deposit is the booking-policy amount required to hold a service booking,
// either a fixed amount or a percentage of the price.
type Deposit struct {
	Type  DepositType     `json:"type"`
	Value decimal.Decimal `json:"value"` // <= 100 when Type is percentage
}

// Service is a bookable catalog entry of a store, optionally grouped under a
// category of the same store.
type Service struct {
	ServiceID   string  `json:"serviceID"`
	StoreID     string  `json:"storeID"`
	CategoryID  *string `json:"categoryID,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // minutes
	Price       Price   `json:"price"`
	Deposit     Deposit `json:"deposit"`
	LaunchDate  string  `json:"launchDate"` // literal DD-MM-YYYY string
	AuditFields
}
