package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/AgroBov/cattle_ledger_app/internal/core/ports/services"
	"github.com/AgroBov/cattle_ledger_app/internal/dto"
)

// clientService manages client master data.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a new client.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error) {
	client := domain.Client{
		ClientID:  uuid.NewString(),
		Name:      req.Name,
		Document:  req.Document,
		Phone:     req.Phone,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

// GetClientByID retrieves a client by its ID.
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

// ListClients retrieves clients, optionally including deactivated ones.
func (s *clientService) ListClients(ctx context.Context, includeInactive bool) ([]domain.Client, error) {
	return s.clientRepo.ListClients(ctx, includeInactive)
}

// DeactivateClient marks a client inactive. Movements referencing it keep
// their reference.
func (s *clientService) DeactivateClient(ctx context.Context, clientID string, requestingUserID string) error {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return err
	}
	if !client.IsActive {
		return fmt.Errorf("%w: client %s is already inactive", apperrors.ErrValidation, clientID)
	}
	client.IsActive = false
	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		return fmt.Errorf("failed to deactivate client: %w", err)
	}
	return nil
}
