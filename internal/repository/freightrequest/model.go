package freightrequest

import (
	"time"

	"github.com/shopspring/decimal"
)

type FreightRequestDB struct {
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

type FreightRequestModifyDB struct {
	ID           *int64
	ShipperID    *int64
	FreightType  *string
	Origin       *string
	Destination  *string
	CargoDetails *string
	Weight       *decimal.Decimal
	Dimensions   *string
	Deadline     *time.Time
	Urgency      *string
	BudgetRange  *string
}
