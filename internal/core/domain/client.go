package domain

import "time"

// ClientNote is one entry of a client's append-only information history.
type ClientNote struct {
	Note   string    `json:"note"`
	Images []string  `json:"images"`
	Date   time.Time `json:"date"`
}

// Client is a customer of a store. Phone and email uniqueness is enforced
// per store, not globally: the same person can be a client of two stores.
// Information is append-only; updates add entries, never splice or remove.
type Client struct {
	ClientID    string       `json:"clientID"`
	StoreID     string       `json:"storeID"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	Information []ClientNote `json:"information"`
	AuditFields
}
