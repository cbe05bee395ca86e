package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"service/internal/entities"
)

type Matching struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Matching {
	return &Matching{
		repository: repository,
		txManager:  txManager,
	}
}

// ListAvailableRequests возвращает открытые запросы, отранжированные по match
// score по убыванию. Запросы со score 0 отбрасываются; при равном score
// порядок детерминирован - по возрастанию id запроса. Только чтение,
// безопасно для конкурентных вызовов.
func (m *Matching) ListAvailableRequests(
	ctx context.Context,
	caller entities.Identity,
	filter entities.RequestFilter,
) ([]entities.MatchedRequest, error) {
	if caller.Role != entities.RoleProvider {
		return nil, ErrNotProvider
	}

	provider, err := m.repository.GetProviderByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, ErrProviderNotFound) {
			// Профиль еще не заполнялся: пустой профиль дает score 0 по
			// любому запросу, список пуст.
			return []entities.MatchedRequest{}, nil
		}
		return nil, fmt.Errorf("get provider: %w", err)
	}

	candidates, err := m.repository.ListOpenRequests(ctx, caller.UserID, filter)
	if err != nil {
		return nil, fmt.Errorf("list open requests: %w", err)
	}

	matched := make([]entities.MatchedRequest, 0, len(candidates))
	for _, candidate := range candidates {
		score := Score(candidate, *provider)
		if score == 0 {
			continue
		}
		matched = append(matched, entities.MatchedRequest{
			Request: candidate,
			Score:   score,
		})
	}

	// кандидаты приходят по id asc, стабильная сортировка сохраняет tie-break
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Score > matched[j].Score
	})

	return matched, nil
}

// UpdateProviderProfile частично обновляет профиль: не переданное поле
// остается нетронутым. Значения хранятся как есть, без нормализации регистра -
// матчинг строгий строковый.
func (m *Matching) UpdateProviderProfile(
	ctx context.Context,
	caller entities.Identity,
	profileModify entities.ProviderProfileModify,
) (*entities.ProviderProfile, error) {
	if caller.Role != entities.RoleProvider {
		return nil, ErrNotProvider
	}

	if profileModify.ServiceAreas == nil && profileModify.Specialties == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	profileModify.ID = &caller.UserID

	profile, err := m.repository.UpsertProviderProfile(ctx, profileModify)
	if err != nil {
		return nil, fmt.Errorf("upsert provider profile: %w", err)
	}

	return profile, nil
}
