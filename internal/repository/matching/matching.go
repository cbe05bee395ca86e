package matching

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	service "service/internal/service/matching"
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

func (r *Repository) GetProviderByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `SELECT id, role, company_name, service_areas, specialties,
			rating, total_ratings, created_at, updated_at
		FROM users
		WHERE id = $1
		  AND role = 'provider'`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&userModel.ID,
		&userModel.Role,
		&userModel.CompanyName,
		&userModel.ServiceAreas,
		&userModel.Specialties,
		&userModel.Rating,
		&userModel.TotalRatings,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrProviderNotFound
		}
		return nil, fmt.Errorf("unexpected matching repository get provider error: %w", err)
	}

	return ToProviderDomain(&userModel), nil
}

// ListOpenRequests - кандидаты для матчинга: открытые запросы без котировки
// данного провайдера, по возрастанию id (детерминированный tie-break ранжирования).
func (r *Repository) ListOpenRequests(
	ctx context.Context,
	providerID int64,
	filter entities.RequestFilter,
) ([]entities.FreightRequest, error) {
	builder := qb.
		Select(`id, shipper_id, freight_type, origin, destination, cargo_details,
			weight, dimensions, deadline, status, urgency, budget_range, created_at`).
		From("freight_requests").
		Where(sq.Eq{"status": []string{"pending", "quoted"}}).
		Where(sq.Expr(
			`NOT EXISTS (SELECT 1 FROM quotes q
				WHERE q.freight_request_id = freight_requests.id
				  AND q.provider_id = ?)`,
			providerID,
		))

	// опциональные фильтры
	if filter.FreightType != nil {
		builder = builder.Where(sq.Eq{"freight_type": filter.FreightType.String()})
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
		return nil, fmt.Errorf("unexpected matching repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository list error: %w", err)
	}
	defer rows.Close()

	requestModels := make([]OpenRequestDB, 0, 8)
	for rows.Next() {
		var requestModel OpenRequestDB
		err := rows.Scan(
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
			&requestModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected matching repository list error: %w", err)
		}
		requestModels = append(requestModels, requestModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository list error: %w", err)
	}

	return ToRequestDomainList(requestModels), nil
}

// UpsertProviderProfile создает строку профиля при первом обращении,
// дальше частично обновляет: NULL-аргумент оставляет поле как есть.
func (r *Repository) UpsertProviderProfile(
	ctx context.Context,
	profileModify entities.ProviderProfileModify,
) (*entities.ProviderProfile, error) {
	query := `INSERT INTO users (id, role, service_areas, specialties)
		VALUES ($1, 'provider', COALESCE($2, '{}'), COALESCE($3, '{}'))
		ON CONFLICT (id) DO UPDATE
		SET service_areas = COALESCE($2, users.service_areas),
		    specialties   = COALESCE($3, users.specialties),
		    updated_at    = NOW()
		RETURNING id, service_areas, specialties`

	profile := entities.ProviderProfile{}
	err := r.querier.QueryRow(
		ctx,
		query,
		profileModify.ID,
		profileModify.ServiceAreas,
		profileModify.Specialties,
	).Scan(
		&profile.ID,
		&profile.ServiceAreas,
		&profile.Specialties,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected matching repository upsert profile error: %w", err)
	}

	return &profile, nil
}
