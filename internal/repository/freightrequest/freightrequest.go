package freightrequest

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	service "service/internal/service/freightrequest"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const requestColumns = `id, shipper_id, freight_type, origin, destination, cargo_details,
		weight, dimensions, deadline, status, urgency, budget_range, selected_quote_id, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, requestModifyEntity entities.FreightRequestModify) (int64, error) {
	requestModifyModel := FromDomainModify(&requestModifyEntity)
	query := `INSERT INTO freight_requests
		(shipper_id, freight_type, origin, destination, cargo_details,
		 weight, dimensions, deadline, status, urgency, budget_range)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'pending', $9, $10)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		requestModifyModel.ShipperID,
		requestModifyModel.FreightType,
		requestModifyModel.Origin,
		requestModifyModel.Destination,
		requestModifyModel.CargoDetails,
		requestModifyModel.Weight,
		requestModifyModel.Dimensions,
		requestModifyModel.Deadline,
		requestModifyModel.Urgency,
		requestModifyModel.BudgetRange,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected freight request repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM freight_requests
		WHERE id = $1`

	requestModel, err := r.scanRequest(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected freight request repository getbyid error: %w", err)
	}

	return ToDomain(requestModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.RequestFilter) ([]entities.FreightRequest, error) {
	builder := qb.
		Select(requestColumns).
		From("freight_requests")

	// опциональные фильтры
	if filter.FreightType != nil {
		builder = builder.Where(sq.Eq{"freight_type": filter.FreightType.String()})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.MinWeight != nil {
		builder = builder.Where(sq.GtOrEq{"weight": *filter.MinWeight})
	}
	if filter.MaxWeight != nil {
		builder = builder.Where(sq.LtOrEq{"weight": *filter.MaxWeight})
	}

	builder = builder.OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected freight request repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected freight request repository list error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]FreightRequestDB, 0, 8)
	for rows.Next() {
		requestModel, err := r.scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected freight request repository list error: %w", err)
		}
		requestModels = append(requestModels, *requestModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected freight request repository list error: %w", err)
	}

	return ToDomainList(requestModels), nil
}

// CancelRequest - условный переход в cancelled из любого нетерминального статуса.
func (r *Repository) CancelRequest(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE freight_requests
		SET status = 'cancelled'
		WHERE id = $1
		  AND status IN ('pending', 'quoted', 'in_progress')`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected freight request repository cancel error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// CompleteRequest - условный переход in_progress -> completed.
func (r *Repository) CompleteRequest(ctx context.Context, id int64) (bool, error) {
	query := `UPDATE freight_requests
		SET status = 'completed'
		WHERE id = $1
		  AND status = 'in_progress'`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("unexpected freight request repository complete error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) GetSelectedProviderID(ctx context.Context, requestID int64) (int64, error) {
	query := `SELECT q.provider_id
		FROM freight_requests fr
		JOIN quotes q ON q.id = fr.selected_quote_id
		WHERE fr.id = $1`

	var providerID int64
	err := r.querier.QueryRow(ctx, query, requestID).Scan(&providerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, service.ErrNoSelectedQuote
		}
		return 0, fmt.Errorf("unexpected freight request repository get selected provider error: %w", err)
	}

	return providerID, nil
}

func (r *Repository) scanRequest(row pgx.Row) (*FreightRequestDB, error) {
	var requestModel FreightRequestDB
	err := row.Scan(
		&requestModel.ID,
		&requestModel.ShipperID,
		&requestModel.FreightType,
		&requestModel.Origin,
		&requestModel.Destination,
		&requestModel.CargoDetails,
		&requestModel.Weight,
		&requestModel.Dimensions,
		&requestModel.Deadline,
		&requestModel.Status,
		&requestModel.Urgency,
		&requestModel.BudgetRange,
		&requestModel.SelectedQuoteID,
		&requestModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &requestModel, nil
}
