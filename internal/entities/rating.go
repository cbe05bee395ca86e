package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Rating struct {
	ID               int64
	FreightRequestID int64
	ProviderID       int64
	ShipperID        int64
	Value            int32
	Review           string
	CreatedAt        time.Time
}

const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

type RatingModify struct {
	ID               *int64
	FreightRequestID *int64
	ProviderID       *int64
	ShipperID        *int64
	Value            *int32
	Review           *string
}

// ProviderReputation - агрегат, пересчитываемый в той же транзакции что и вставка оценки.
type ProviderReputation struct {
	ProviderID   int64
	CompanyName  string
	Rating       decimal.Decimal
	TotalRatings int64
}
