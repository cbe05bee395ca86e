package events

import "time"

// Контракты событий для внешних потребителей: Messaging создает трэд
// переписки по принятой котировке, Rating Aggregator открывает окно оценки
// по завершенному запросу.
type quoteAcceptedEvent struct {
	QuoteID          int64     `json:"quote_id"`
	FreightRequestID int64     `json:"freight_request_id"`
	ShipperID        int64     `json:"shipper_id"`
	ProviderID       int64     `json:"provider_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}

type requestCompletedEvent struct {
	FreightRequestID int64     `json:"freight_request_id"`
	ProviderID       int64     `json:"provider_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}
