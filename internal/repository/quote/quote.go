package quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	service "service/internal/service/quote"
)

const quoteColumns = `id, freight_request_id, provider_id, price, estimated_delivery_date,
		description, status, valid_until, terms_conditions, insurance_coverage, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateQuote(ctx context.Context, quoteModifyEntity entities.QuoteModify) (*entities.Quote, error) {
	quoteModifyModel := FromDomainModify(&quoteModifyEntity)
	// COALESCE: NULL в опциональных полях затирал бы DEFAULT колонок NOT NULL.
	query := `INSERT INTO quotes
		(freight_request_id, provider_id, price, estimated_delivery_date,
		 description, status, valid_until, terms_conditions, insurance_coverage)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), $6, $7, COALESCE($8, ''), COALESCE($9, 0))
		RETURNING ` + quoteColumns

	var quoteModel QuoteDB
	err := r.querier.QueryRow(
		ctx,
		query,
		quoteModifyModel.FreightRequestID,
		quoteModifyModel.ProviderID,
		quoteModifyModel.Price,
		quoteModifyModel.EstimatedDelivery,
		quoteModifyModel.Description,
		quoteModifyModel.Status,
		quoteModifyModel.ValidUntil,
		quoteModifyModel.Terms,
		quoteModifyModel.InsuranceCoverage,
	).Scan(
		&quoteModel.ID,
		&quoteModel.FreightRequestID,
		&quoteModel.ProviderID,
		&quoteModel.Price,
		&quoteModel.EstimatedDelivery,
		&quoteModel.Description,
		&quoteModel.Status,
		&quoteModel.ValidUntil,
		&quoteModel.Terms,
		&quoteModel.InsuranceCoverage,
		&quoteModel.CreatedAt,
	)
	if err != nil {
		// частичный уникальный индекс: один pending на пару (запрос, провайдер)
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, service.ErrQuoteAlreadySubmitted
		}
		return nil, fmt.Errorf("unexpected quote repository create error: %w", err)
	}

	return ToDomain(&quoteModel), nil
}

func (r *Repository) GetQuoteByID(ctx context.Context, id int64) (*entities.Quote, error) {
	query := `SELECT ` + quoteColumns + `
		FROM quotes
		WHERE id = $1`

	var quoteModel QuoteDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&quoteModel.ID,
		&quoteModel.FreightRequestID,
		&quoteModel.ProviderID,
		&quoteModel.Price,
		&quoteModel.EstimatedDelivery,
		&quoteModel.Description,
		&quoteModel.Status,
		&quoteModel.ValidUntil,
		&quoteModel.Terms,
		&quoteModel.InsuranceCoverage,
		&quoteModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("unexpected quote repository getbyid error: %w", err)
	}

	return ToDomain(&quoteModel), nil
}

// ListByRequestID возвращает котировки запроса со снапшотом провайдера.
// Профиль провайдера может отсутствовать в users, тогда имя пустое и рейтинг 0.
func (r *Repository) ListByRequestID(ctx context.Context, requestID int64) ([]entities.AnnotatedQuote, error) {
	query := `SELECT
			q.id, q.freight_request_id, q.provider_id, q.price, q.estimated_delivery_date,
			q.description, q.status, q.valid_until, q.terms_conditions, q.insurance_coverage, q.created_at,
			COALESCE(u.company_name, ''), COALESCE(u.rating, 0)
		FROM quotes q
		LEFT JOIN users u ON u.id = q.provider_id
		WHERE q.freight_request_id = $1
		ORDER BY q.id`

	rows, err := r.querier.Query(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
	}
	defer rows.Close()

	quoteModels := make([]AnnotatedQuoteDB, 0, 8)
	for rows.Next() {
		var quoteModel AnnotatedQuoteDB
		err := rows.Scan(
			&quoteModel.ID,
			&quoteModel.FreightRequestID,
			&quoteModel.ProviderID,
			&quoteModel.Price,
			&quoteModel.EstimatedDelivery,
			&quoteModel.Description,
			&quoteModel.Status,
			&quoteModel.ValidUntil,
			&quoteModel.Terms,
			&quoteModel.InsuranceCoverage,
			&quoteModel.CreatedAt,
			&quoteModel.ProviderCompanyName,
			&quoteModel.ProviderRating,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
		}
		quoteModels = append(quoteModels, quoteModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository list error: %w", err)
	}

	return ToAnnotatedDomainList(quoteModels), nil
}

func (r *Repository) HasProviderQuote(ctx context.Context, requestID, providerID int64) (bool, error) {
	query := `SELECT EXISTS (
			SELECT 1 FROM quotes
			WHERE freight_request_id = $1 AND provider_id = $2
		)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, requestID, providerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected quote repository has provider quote error: %w", err)
	}

	return exists, nil
}

func (r *Repository) GetRequestByID(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	return r.getRequest(ctx, id, "")
}

// GetRequestByIDForShare держит разделяемую блокировку строки запроса до конца
// текущей транзакции: статус запроса не поменяется под вставкой котировки.
func (r *Repository) GetRequestByIDForShare(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	return r.getRequest(ctx, id, "FOR SHARE")
}

// GetRequestByIDForUpdate блокирует строку запроса до конца текущей транзакции.
// Конкурентное принятие котировки встает на этой блокировке и после ее снятия
// видит уже закрытый запрос.
func (r *Repository) GetRequestByIDForUpdate(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	return r.getRequest(ctx, id, "FOR UPDATE")
}

// MarkRequestQuoted - переход pending -> quoted при первой котировке.
// Ноль затронутых строк - запрос уже quoted, это не ошибка.
func (r *Repository) MarkRequestQuoted(ctx context.Context, requestID int64) error {
	query := `UPDATE freight_requests
		SET status = 'quoted'
		WHERE id = $1
		  AND status = 'pending'`

	_, err := r.querier.Exec(ctx, query, requestID)
	if err != nil {
		return fmt.Errorf("unexpected quote repository mark quoted error: %w", err)
	}

	return nil
}

// PromoteRequestInProgress - CAS-переход открытого запроса в in_progress
// с фиксацией выбранной котировки.
func (r *Repository) PromoteRequestInProgress(ctx context.Context, requestID, selectedQuoteID int64) error {
	query := `UPDATE freight_requests
		SET status = 'in_progress',
		    selected_quote_id = $2
		WHERE id = $1
		  AND status IN ('pending', 'quoted')`

	result, err := r.querier.Exec(ctx, query, requestID, selectedQuoteID)
	if err != nil {
		return fmt.Errorf("unexpected quote repository promote request error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return service.ErrRequestClosed
	}

	return nil
}

func (r *Repository) AcceptQuote(ctx context.Context, quoteID int64) error {
	query := `UPDATE quotes
		SET status = 'accepted'
		WHERE id = $1
		  AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, quoteID)
	if err != nil {
		return fmt.Errorf("unexpected quote repository accept error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return service.ErrRequestClosed
	}

	return nil
}

func (r *Repository) RejectSiblings(ctx context.Context, requestID, acceptedQuoteID int64) (int64, error) {
	query := `UPDATE quotes
		SET status = 'rejected'
		WHERE freight_request_id = $1
		  AND id != $2
		  AND status = 'pending'`

	result, err := r.querier.Exec(ctx, query, requestID, acceptedQuoteID)
	if err != nil {
		return 0, fmt.Errorf("unexpected quote repository reject siblings error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) ExpirePendingQuotes(ctx context.Context) (int64, error) {
	query := `UPDATE quotes
		SET status = 'expired'
		WHERE status = 'pending'
		  AND valid_until < NOW()`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected quote repository expire error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) getRequest(ctx context.Context, id int64, lockClause string) (*entities.FreightRequest, error) {
	query := `SELECT id, shipper_id, freight_type, origin, destination, cargo_details,
			weight, dimensions, deadline, status, urgency, budget_range, selected_quote_id, created_at
		FROM freight_requests
		WHERE id = $1`
	if lockClause != "" {
		query += `
		` + lockClause
	}

	var requestModel requestDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected quote repository get request error: %w", err)
	}

	return requestToDomain(&requestModel), nil
}
