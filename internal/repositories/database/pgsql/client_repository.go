package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
	"github.com/AgroBov/cattle_ledger_app/internal/models"
	"github.com/AgroBov/cattle_ledger_app/internal/utils/mapping"
)

const clientColumns = `client_id, name, document, phone, is_active, created_at`

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client master data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// SaveClient persists a new client.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
		INSERT INTO clients (client_id, name, document, phone, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		client.ClientID,
		client.Name,
		client.Document,
		client.Phone,
		client.IsActive,
		client.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewAppError(409, "client "+client.ClientID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save client "+client.ClientID, err)
	}
	return nil
}

// FindClientByID retrieves a client by its unique identifier.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`

	var m models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&m.ClientID,
		&m.Name,
		&m.Document,
		&m.Phone,
		&m.IsActive,
		&m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to find client "+clientID, err)
	}

	client := mapping.ToDomainClient(m)
	return &client, nil
}

// ListClients retrieves clients ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context, includeInactive bool) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	if !includeInactive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query clients", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID,
			&m.Name,
			&m.Document,
			&m.Phone,
			&m.IsActive,
			&m.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan client row", err)
		}
		clients = append(clients, mapping.ToDomainClient(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating client rows", err)
	}
	return clients, nil
}

// UpdateClient persists changes to an existing client.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $1, document = $2, phone = $3, is_active = $4
		WHERE client_id = $5;
	`
	tag, err := r.Pool.Exec(ctx, query,
		client.Name,
		client.Document,
		client.Phone,
		client.IsActive,
		client.ClientID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update client "+client.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
