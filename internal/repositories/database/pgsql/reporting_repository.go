package pgsql

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/AgroBov/cattle_ledger_app/internal/apperrors"
	"github.com/AgroBov/cattle_ledger_app/internal/core/domain"
	portsrepo "github.com/AgroBov/cattle_ledger_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for report data.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetCategoryPeriodRows builds per-category opening, per-operation and
// closing quantities for one farm over [from, to]. Categories without any
// ledger history still appear with zero rows.
func (r *PgxReportingRepository) GetCategoryPeriodRows(ctx context.Context, farmID string, from, to time.Time) ([]domain.CategoryPeriodRow, error) {
	categoriesQuery := `
		SELECT category_id, name
		FROM animal_categories
		WHERE is_active
		ORDER BY display_order, name;
	`
	rows, err := r.Pool.Query(ctx, categoriesQuery)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories for report", err)
	}
	defer rows.Close()

	var report []domain.CategoryPeriodRow
	index := make(map[string]int)
	for rows.Next() {
		var categoryID, name string
		if err := rows.Scan(&categoryID, &name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category row", err)
		}
		index[categoryID] = len(report)
		report = append(report, domain.CategoryPeriodRow{
			CategoryID:   categoryID,
			CategoryName: name,
			Entries:      make(map[domain.OperationType]int64),
			Exits:        make(map[domain.OperationType]int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category rows", err)
	}

	openingQuery := `
		SELECT category_id, ` + signedSumExpr + `
		FROM animal_movements
		WHERE farm_id = $1 AND occurred_at < $2
		GROUP BY category_id;
	`
	openingRows, err := r.Pool.Query(ctx, openingQuery, farmID, from)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query opening quantities", err)
	}
	defer openingRows.Close()

	for openingRows.Next() {
		var categoryID string
		var opening int64
		if err := openingRows.Scan(&categoryID, &opening); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan opening row", err)
		}
		if i, ok := index[categoryID]; ok {
			report[i].Opening = opening
			report[i].Closing = opening
		}
	}
	if err := openingRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating opening rows", err)
	}

	periodQuery := `
		SELECT category_id, operation, direction, COALESCE(SUM(quantity), 0)
		FROM animal_movements
		WHERE farm_id = $1 AND occurred_at >= $2 AND occurred_at <= $3
		GROUP BY category_id, operation, direction;
	`
	periodRows, err := r.Pool.Query(ctx, periodQuery, farmID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query period totals", err)
	}
	defer periodRows.Close()

	for periodRows.Next() {
		var categoryID, operation, direction string
		var total int64
		if err := periodRows.Scan(&categoryID, &operation, &direction, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", err)
		}
		i, ok := index[categoryID]
		if !ok {
			continue
		}
		if direction == string(domain.Entry) {
			report[i].Entries[domain.OperationType(operation)] = total
			report[i].Closing += total
		} else {
			report[i].Exits[domain.OperationType(operation)] = total
			report[i].Closing -= total
		}
	}
	if err := periodRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating period rows", err)
	}

	return report, nil
}

// GetMovementDetails retrieves the detail lines (deaths, slaughters, sales,
// donations) of one farm over [from, to], oldest first.
func (r *PgxReportingRepository) GetMovementDetails(ctx context.Context, farmID string, from, to time.Time) ([]domain.MovementDetail, error) {
	query := `
		SELECT m.occurred_at, c.name, m.operation, m.quantity,
		       cl.name, dc.name,
		       m.metadata->>'weightKg', m.metadata->>'totalPrice', m.metadata->>'notes'
		FROM animal_movements m
		JOIN animal_categories c ON c.category_id = m.category_id
		LEFT JOIN clients cl ON cl.client_id = m.client_id
		LEFT JOIN death_causes dc ON dc.death_cause_id = m.death_cause_id
		WHERE m.farm_id = $1
		  AND m.occurred_at >= $2 AND m.occurred_at <= $3
		  AND m.operation IN ('DEATH', 'SLAUGHTER', 'SALE', 'DONATION')
		ORDER BY m.occurred_at, m.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, farmID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query movement details", err)
	}
	defer rows.Close()

	var details []domain.MovementDetail
	for rows.Next() {
		var d domain.MovementDetail
		var operation string
		var clientName, causeName, weight, price, notes sql.NullString
		if err := rows.Scan(
			&d.OccurredAt,
			&d.CategoryName,
			&operation,
			&d.Quantity,
			&clientName,
			&causeName,
			&weight,
			&price,
			&notes,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan movement detail row", err)
		}
		d.Operation = domain.OperationType(operation)
		d.ClientName = clientName.String
		d.DeathCause = causeName.String
		d.Notes = notes.String
		if weight.Valid {
			if v, err := decimal.NewFromString(weight.String); err == nil {
				d.WeightKg = &v
			}
		}
		if price.Valid {
			if v, err := decimal.NewFromString(price.String); err == nil {
				d.TotalPrice = &v
			}
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating movement detail rows", err)
	}
	return details, nil
}
