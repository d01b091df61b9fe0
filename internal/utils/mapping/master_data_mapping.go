package mapping

import (
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	"github.com/AgroBov/cattle_ledger_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelFarm converts a domain Farm to a model Farm.
func ToModelFarm(d domain.Farm) models.Farm {
	return models.Farm{
		FarmID:      d.FarmID,
		Name:        d.Name,
		Location:    d.Location,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFarm converts a model Farm to a domain Farm.
func ToDomainFarm(m models.Farm) domain.Farm {
	return domain.Farm{
		FarmID:      m.FarmID,
		Name:        m.Name,
		Location:    m.Location,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Slug:         m.Slug,
		Description:  m.Description,
		IsSystem:     m.IsSystem,
		IsActive:     m.IsActive,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
	}
}

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:   d.CategoryID,
		Name:         d.Name,
		Slug:         d.Slug,
		Description:  d.Description,
		IsSystem:     d.IsSystem,
		IsActive:     d.IsActive,
		DisplayOrder: d.DisplayOrder,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainClient converts a model Client to a domain Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:  m.ClientID,
		Name:      m.Name,
		Document:  m.Document,
		Phone:     m.Phone,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainDeathCause converts a model DeathCause to a domain DeathCause.
func ToDomainDeathCause(m models.DeathCause) domain.DeathCause {
	return domain.DeathCause{
		DeathCauseID: m.DeathCauseID,
		Name:         m.Name,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}
