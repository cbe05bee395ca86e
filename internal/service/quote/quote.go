package quote

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

// DefaultValidityWindow - срок действия котировки с момента подачи.
const DefaultValidityWindow = 48 * time.Hour

type Quote struct {
	log            logger.Logger
	repository     Repository
	events         Events
	txManager      TxManager
	validityWindow time.Duration
}

func New(
	log logger.Logger,
	repository Repository,
	events Events,
	txManager TxManager,
	validityWindow time.Duration,
) *Quote {
	if validityWindow <= 0 {
		validityWindow = DefaultValidityWindow
	}

	return &Quote{
		log:            log,
		repository:     repository,
		events:         events,
		txManager:      txManager,
		validityWindow: validityWindow,
	}
}

// SubmitQuote создает котировку провайдера по открытому запросу.
// Вставка котировки и переход запроса pending -> quoted выполняются одной транзакцией.
func (s *Quote) SubmitQuote(
	ctx context.Context,
	caller entities.Identity,
	quoteModify entities.QuoteModify,
) (*entities.Quote, error) {
	if caller.Role != entities.RoleProvider {
		return nil, ErrNotProvider
	}

	if quoteModify.FreightRequestID == nil ||
		quoteModify.Price == nil ||
		quoteModify.EstimatedDelivery == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPrice(*quoteModify.Price) {
		return nil, ErrInvalidPrice
	}
	if quoteModify.EstimatedDelivery.IsZero() {
		return nil, ErrInvalidDeliveryDate
	}
	if quoteModify.InsuranceCoverage != nil && quoteModify.InsuranceCoverage.IsNegative() {
		return nil, ErrInvalidInsurance
	}

	validUntil := time.Now().UTC().Add(s.validityWindow)
	pendingStatus := entities.QuotePending
	quoteModify.ProviderID = &caller.UserID
	quoteModify.Status = &pendingStatus
	quoteModify.ValidUntil = &validUntil

	var created *entities.Quote
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// Разделяемая блокировка: конкурентная отмена запроса не проскочит
		// между проверкой статуса и вставкой котировки.
		request, err := s.repository.GetRequestByIDForShare(ctx, *quoteModify.FreightRequestID)
		if err != nil {
			return fmt.Errorf("get freight request: %w", err)
		}

		if !request.Status.IsOpen() {
			return ErrRequestClosed
		}

		created, err = s.repository.CreateQuote(ctx, quoteModify)
		if err != nil {
			return fmt.Errorf("create quote: %w", err)
		}

		// Первая котировка переводит запрос в quoted; для уже quoted
		// обновление не находит строку и это не ошибка.
		if request.Status == entities.RequestPending {
			err = s.repository.MarkRequestQuoted(ctx, request.ID)
			if err != nil {
				return fmt.Errorf("mark request quoted: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListQuotes возвращает котировки запроса. Доступ только владельцу-шипперу
// либо провайдеру, уже подавшему котировку на этот запрос.
func (s *Quote) ListQuotes(
	ctx context.Context,
	caller entities.Identity,
	requestID int64,
) ([]entities.AnnotatedQuote, error) {
	request, err := s.repository.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get freight request: %w", err)
	}

	if request.ShipperID != caller.UserID {
		hasQuote, err := s.repository.HasProviderQuote(ctx, requestID, caller.UserID)
		if err != nil {
			return nil, fmt.Errorf("check provider quote: %w", err)
		}
		if !hasQuote {
			return nil, ErrForbidden
		}
	}

	quotes, err := s.repository.ListByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	return quotes, nil
}

// AcceptQuote принимает котировку от имени шиппера-владельца запроса.
//
// Все три записи (котировка -> accepted, соперники -> rejected,
// запрос -> in_progress + selected_quote) выполняются одной транзакцией
// под блокировкой строки запроса, поэтому из двух конкурентных принятий
// ровно одно завершается успешно, второе видит закрытый запрос.
func (s *Quote) AcceptQuote(
	ctx context.Context,
	caller entities.Identity,
	quoteID int64,
) (*entities.QuoteAcceptance, error) {
	acceptance := entities.QuoteAcceptance{}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		target, err := s.repository.GetQuoteByID(ctx, quoteID)
		if err != nil {
			return fmt.Errorf("get quote: %w", err)
		}

		request, err := s.repository.GetRequestByIDForUpdate(ctx, target.FreightRequestID)
		if err != nil {
			return fmt.Errorf("lock freight request: %w", err)
		}

		if request.ShipperID != caller.UserID {
			return ErrForbidden
		}
		if !request.Status.IsOpen() {
			return ErrRequestClosed
		}
		if target.ValidUntil.Before(time.Now().UTC()) || target.Status == entities.QuoteExpired {
			return ErrQuoteExpired
		}
		if target.Status != entities.QuotePending {
			return ErrRequestClosed
		}

		err = s.repository.AcceptQuote(ctx, target.ID)
		if err != nil {
			return fmt.Errorf("accept quote: %w", err)
		}

		rejected, err := s.repository.RejectSiblings(ctx, request.ID, target.ID)
		if err != nil {
			return fmt.Errorf("reject sibling quotes: %w", err)
		}

		err = s.repository.PromoteRequestInProgress(ctx, request.ID, target.ID)
		if err != nil {
			return fmt.Errorf("promote freight request: %w", err)
		}

		acceptance = entities.QuoteAcceptance{
			QuoteID:          target.ID,
			FreightRequestID: request.ID,
			ShipperID:        request.ShipperID,
			ProviderID:       target.ProviderID,
			RequestStatus:    entities.RequestInProgress,
			RejectedQuotes:   rejected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Событие для Messaging публикуем после коммита: участники диалога
	// по запросу определены. Ошибка публикации не откатывает принятие.
	err = s.events.QuoteAccepted(ctx, acceptance)
	if err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("quote_id", acceptance.QuoteID),
		).Error("publish quote.accepted event")
	}

	return &acceptance, nil
}

// ExpireQuotes помечает просроченные pending котировки как expired.
// Ленивая проверка valid_until в AcceptQuote остается авторитетной,
// sweep лишь поддерживает честность хранимого статуса для читателей.
func (s *Quote) ExpireQuotes(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.ExpirePendingQuotes(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire pending quotes: %w", err)
	}

	return rowsAffected, nil
}
