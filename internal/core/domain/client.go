package domain

import "time"

// Client is the buyer or receiving party of a sale or donation.
type Client struct {
	ClientID  string    `json:"clientID"` // Primary key (UUID)
	Name      string    `json:"name"`
	Document  string    `json:"document"` // Tax or identity document, free form
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeathCause classifies death movements (disease, accident, predator, ...).
type DeathCause struct {
	DeathCauseID string    `json:"deathCauseID"` // Primary key (UUID)
	Name         string    `json:"name"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
