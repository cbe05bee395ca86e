package rating

import (
	"context"
	"fmt"

	"service/internal/entities"
)

const DefaultListLimit = 10

type Rating struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Rating {
	return &Rating{
		repository: repository,
		txManager:  txManager,
	}
}

// SubmitRating принимает оценку шиппера по завершенному запросу.
// Вставка оценки и пересчет агрегата провайдера (среднее + счетчик)
// выполняются одной транзакцией: агрегат никогда не расходится со строками.
func (s *Rating) SubmitRating(
	ctx context.Context,
	caller entities.Identity,
	requestID int64,
	value int32,
	review string,
) (int64, error) {
	if value < entities.MinRatingValue || value > entities.MaxRatingValue {
		return 0, ErrInvalidRatingValue
	}

	var ratingID int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		request, err := s.repository.GetRequestByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get freight request: %w", err)
		}

		if request.ShipperID != caller.UserID {
			return ErrForbidden
		}
		if request.Status != entities.RequestCompleted {
			return ErrRequestNotCompleted
		}
		if request.SelectedQuoteID == nil {
			return ErrNoSelectedQuote
		}

		providerID, err := s.repository.GetSelectedProviderID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("get selected provider: %w", err)
		}

		ratingModify := entities.RatingModify{
			FreightRequestID: &requestID,
			ProviderID:       &providerID,
			ShipperID:        &caller.UserID,
			Value:            &value,
			Review:           &review,
		}

		ratingID, err = s.repository.CreateRating(ctx, ratingModify)
		if err != nil {
			return fmt.Errorf("create rating: %w", err)
		}

		_, err = s.repository.RecomputeProviderReputation(ctx, providerID)
		if err != nil {
			return fmt.Errorf("recompute provider reputation: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return ratingID, nil
}

// ListProviderRatings возвращает репутацию провайдера и его оценки,
// новые первыми.
func (s *Rating) ListProviderRatings(
	ctx context.Context,
	providerID int64,
	filter ListFilter,
) (*entities.ProviderReputation, []entities.Rating, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}

	reputation, err := s.repository.GetProviderReputation(ctx, providerID)
	if err != nil {
		return nil, nil, fmt.Errorf("get provider reputation: %w", err)
	}

	ratings, err := s.repository.ListProviderRatings(ctx, providerID, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("list provider ratings: %w", err)
	}

	return reputation, ratings, nil
}
