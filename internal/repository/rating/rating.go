package rating

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	service "service/internal/service/rating"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetRequestByID(ctx context.Context, id int64) (*entities.FreightRequest, error) {
	query := `SELECT id, shipper_id, status, selected_quote_id
		FROM freight_requests
		WHERE id = $1`

	request := entities.FreightRequest{}
	var status string
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.ShipperID,
		&status,
		&request.SelectedQuoteID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrRequestNotFound
		}
		return nil, fmt.Errorf("unexpected rating repository get request error: %w", err)
	}
	request.Status = entities.RequestStatusType(status)

	return &request, nil
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
		return 0, fmt.Errorf("unexpected rating repository get selected provider error: %w", err)
	}

	return providerID, nil
}

func (r *Repository) CreateRating(ctx context.Context, ratingModifyEntity entities.RatingModify) (int64, error) {
	ratingModifyModel := FromDomainModify(&ratingModifyEntity)
	query := `INSERT INTO ratings (freight_request_id, provider_id, shipper_id, rating, review)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		ratingModifyModel.FreightRequestID,
		ratingModifyModel.ProviderID,
		ratingModifyModel.ShipperID,
		ratingModifyModel.Value,
		ratingModifyModel.Review,
	).Scan(&id)
	if err != nil {
		// уникальность (freight_request_id, shipper_id): одна оценка на запрос
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, service.ErrAlreadyRated
		}
		return 0, fmt.Errorf("unexpected rating repository create error: %w", err)
	}

	return id, nil
}

// RecomputeProviderReputation пересчитывает агрегат по всем строкам ratings.
// Производное значение, read-modify-write в транзакции вставки оценки.
func (r *Repository) RecomputeProviderReputation(ctx context.Context, providerID int64) (*entities.ProviderReputation, error) {
	// Провайдер мог котировать, ни разу не заполнив профиль: строка users
	// создается здесь же.
	query := `INSERT INTO users (id, role, rating, total_ratings)
		SELECT $1, 'provider', COALESCE(AVG(rating), 0), COUNT(*)
		FROM ratings
		WHERE provider_id = $1
		ON CONFLICT (id) DO UPDATE
		SET rating = EXCLUDED.rating,
		    total_ratings = EXCLUDED.total_ratings,
		    updated_at = NOW()
		RETURNING id, company_name, rating, total_ratings`

	reputation := entities.ProviderReputation{}
	err := r.querier.QueryRow(ctx, query, providerID).Scan(
		&reputation.ProviderID,
		&reputation.CompanyName,
		&reputation.Rating,
		&reputation.TotalRatings,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository recompute error: %w", err)
	}

	return &reputation, nil
}

func (r *Repository) GetProviderReputation(ctx context.Context, providerID int64) (*entities.ProviderReputation, error) {
	query := `SELECT id, company_name, rating, total_ratings
		FROM users
		WHERE id = $1
		  AND role = 'provider'`

	reputation := entities.ProviderReputation{}
	err := r.querier.QueryRow(ctx, query, providerID).Scan(
		&reputation.ProviderID,
		&reputation.CompanyName,
		&reputation.Rating,
		&reputation.TotalRatings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrProviderNotFound
		}
		return nil, fmt.Errorf("unexpected rating repository get reputation error: %w", err)
	}

	return &reputation, nil
}

func (r *Repository) ListProviderRatings(
	ctx context.Context,
	providerID int64,
	filter service.ListFilter,
) ([]entities.Rating, error) {
	builder := qb.
		Select("id, freight_request_id, provider_id, shipper_id, rating, review, created_at").
		From("ratings").
		Where(sq.Eq{"provider_id": providerID})

	if filter.MinRating != nil {
		builder = builder.Where(sq.GtOrEq{"rating": *filter.MinRating})
	}

	builder = builder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
	}
	defer rows.Close()

	ratingModels := make([]RatingDB, 0, 8)
	for rows.Next() {
		var ratingModel RatingDB
		err := rows.Scan(
			&ratingModel.ID,
			&ratingModel.FreightRequestID,
			&ratingModel.ProviderID,
			&ratingModel.ShipperID,
			&ratingModel.Value,
			&ratingModel.Review,
			&ratingModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
		}
		ratingModels = append(ratingModels, ratingModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository list error: %w", err)
	}

	return ToDomainList(ratingModels), nil
}
