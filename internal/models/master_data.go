package models

import "time"

// AuditFields holds standard audit columns shared by master-data tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Farm mirrors the farms table.
type Farm struct {
	FarmID   string `json:"farmID"`
	Name     string `json:"name"`
	Location string `json:"location"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Category mirrors the animal_categories table.
type Category struct {
	CategoryID   string    `json:"categoryID"`
	Name         string    `json:"name"`
	Slug         *string   `json:"slug,omitempty"`
	Description  string    `json:"description"`
	IsSystem     bool      `json:"isSystem"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Client mirrors the clients table.
type Client struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// DeathCause mirrors the death_causes table.
type DeathCause struct {
	DeathCauseID string    `json:"deathCauseID"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
