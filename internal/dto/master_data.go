package dto

import (
	"time"

	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
)

// CreateFarmRequest is the payload for registering a farm.
type CreateFarmRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Location string `json:"location" binding:"max=200"`
}

// UpdateFarmRequest is the payload for updating a farm. Nil fields are left
// unchanged.
type UpdateFarmRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Location *string `json:"location" binding:"omitempty,max=200"`
	IsActive *bool   `json:"isActive"`
}

// FarmResponse is the data returned for a farm.
type FarmResponse struct {
	FarmID    string    `json:"farmID"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateCategoryRequest is the payload for creating a custom animal category.
type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=100"`
	Description  string `json:"description" binding:"max=500"`
	DisplayOrder int    `json:"displayOrder" binding:"gte=0"`
}

// CategoryResponse is the data returned for an animal category.
type CategoryResponse struct {
	CategoryID   string    `json:"categoryID"`
	Name         string    `json:"name"`
	Slug         *string   `json:"slug,omitempty"`
	Description  string    `json:"description,omitempty"`
	IsSystem     bool      `json:"isSystem"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateClientRequest is the payload for registering a client.
type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=150"`
	Document string `json:"document" binding:"max=50"`
	Phone    string `json:"phone" binding:"max=30"`
}

// ClientResponse is the data returned for a client.
type ClientResponse struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Document  string    `json:"document,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateDeathCauseRequest is the payload for registering a death cause.
type CreateDeathCauseRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// DeathCauseResponse is the data returned for a death cause.
type DeathCauseResponse struct {
	DeathCauseID string    `json:"deathCauseID"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToFarmResponse converts a domain Farm.
func ToFarmResponse(f *domain.Farm) FarmResponse {
	return FarmResponse{
		FarmID:    f.FarmID,
		Name:      f.Name,
		Location:  f.Location,
		IsActive:  f.IsActive,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.LastUpdatedAt,
	}
}

// ToFarmResponses converts a slice of domain Farms.
func ToFarmResponses(fs []domain.Farm) []FarmResponse {
	responses := make([]FarmResponse, len(fs))
	for i := range fs {
		responses[i] = ToFarmResponse(&fs[i])
	}
	return responses
}

// ToCategoryResponse converts a domain Category.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:   c.CategoryID,
		Name:         c.Name,
		Slug:         c.Slug,
		Description:  c.Description,
		IsSystem:     c.IsSystem,
		IsActive:     c.IsActive,
		DisplayOrder: c.DisplayOrder,
		CreatedAt:    c.CreatedAt,
	}
}

// ToCategoryResponses converts a slice of domain Categories.
func ToCategoryResponses(cs []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(cs))
	for i := range cs {
		responses[i] = ToCategoryResponse(&cs[i])
	}
	return responses
}

// ToClientResponse converts a domain Client.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain Clients.
func ToClientResponses(cs []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(cs))
	for i := range cs {
		responses[i] = ToClientResponse(&cs[i])
	}
	return responses
}

// ToDeathCauseResponse converts a domain DeathCause.
func ToDeathCauseResponse(d *domain.DeathCause) DeathCauseResponse {
	return DeathCauseResponse{
		DeathCauseID: d.DeathCauseID,
		Name:         d.Name,
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDeathCauseResponses converts a slice of domain DeathCauses.
func ToDeathCauseResponses(ds []domain.DeathCause) []DeathCauseResponse {
	responses := make([]DeathCauseResponse, len(ds))
	for i := range ds {
		responses[i] = ToDeathCauseResponse(&ds[i])
	}
	return responses
}
