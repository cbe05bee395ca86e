package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Quote struct {
	ID                int64
	FreightRequestID  int64
	ProviderID        int64
	Price             decimal.Decimal
	EstimatedDelivery time.Time
	Description       string
	Status            QuoteStatusType
	ValidUntil        time.Time
	Terms             string
	InsuranceCoverage decimal.Decimal
	CreatedAt         time.Time
}

type QuoteStatusType string

const (
	QuotePending  QuoteStatusType = "pending"
	QuoteAccepted QuoteStatusType = "accepted"
	QuoteRejected QuoteStatusType = "rejected"
	QuoteExpired  QuoteStatusType = "expired"
)

func (s QuoteStatusType) String() string {
	return string(s)
}

type QuoteModify struct {
	ID                *int64
	FreightRequestID  *int64
	ProviderID        *int64
	Price             *decimal.Decimal
	EstimatedDelivery *time.Time
	Description       *string
	Status            *QuoteStatusType
	ValidUntil        *time.Time
	Terms             *string
	InsuranceCoverage *decimal.Decimal
}

// AnnotatedQuote - котировка со снапшотом провайдера для выдачи шипперу.
type AnnotatedQuote struct {
	Quote
	ProviderCompanyName string
	ProviderRating      decimal.Decimal
}

// QuoteAcceptance - результат успешного принятия котировки.
type QuoteAcceptance struct {
	QuoteID          int64
	FreightRequestID int64
	ShipperID        int64
	ProviderID       int64
	RequestStatus    RequestStatusType
	RejectedQuotes   int64
}
