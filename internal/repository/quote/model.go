package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteDB struct {
	ID                int64
	FreightRequestID  int64
	ProviderID        int64
	Price             decimal.Decimal
	EstimatedDelivery time.Time
	Description       string
	Status            string
	ValidUntil        time.Time
	Terms             string
	InsuranceCoverage decimal.Decimal
	CreatedAt         time.Time
}

type AnnotatedQuoteDB struct {
	QuoteDB
	ProviderCompanyName string
	ProviderRating      decimal.Decimal
}

type QuoteModifyDB struct {
	ID                *int64
	FreightRequestID  *int64
	ProviderID        *int64
	Price             *decimal.Decimal
	EstimatedDelivery *time.Time
	Description       *string
	Status            *string
	ValidUntil        *time.Time
	Terms             *string
	InsuranceCoverage *decimal.Decimal
}

// requestDB - строка freight_requests, читаемая внутри транзакций котировок.
type requestDB struct {
	ID              int64
	ShipperID       int64
	FreightType     string
	Origin          string
	Destination     string
	CargoDetails    string
	Weight          *decimal.Decimal
	Dimensions      *string
	Deadline        *time.Time
	Status          string
	Urgency         string
	BudgetRange     *string
	SelectedQuoteID *int64
	CreatedAt       time.Time
}
