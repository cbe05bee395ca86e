package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type FreightRequest struct {
	ID              int64
	ShipperID       int64
	FreightType     FreightType
	Origin          string
	Destination     string
	CargoDetails    string
	Weight          *decimal.Decimal
	Dimensions      *string
	Deadline        *time.Time
	Status          RequestStatusType
	Urgency         UrgencyType
	BudgetRange     *string
	SelectedQuoteID *int64
	CreatedAt       time.Time
}

type FreightType string

const (
	FreightRoad FreightType = "road"
	FreightAir  FreightType = "air"
	FreightSea  FreightType = "sea"
	FreightRail FreightType = "rail"
)

func (t FreightType) String() string {
	return string(t)
}

type RequestStatusType string

const (
	RequestPending    RequestStatusType = "pending"
	RequestQuoted     RequestStatusType = "quoted"
	RequestInProgress RequestStatusType = "in_progress"
	RequestCompleted  RequestStatusType = "completed"
	RequestCancelled  RequestStatusType = "cancelled"
)

func (s RequestStatusType) String() string {
	return string(s)
}

// IsOpen - запрос еще принимает котировки.
func (s RequestStatusType) IsOpen() bool {
	return s == RequestPending || s == RequestQuoted
}

func (s RequestStatusType) IsTerminal() bool {
	return s == RequestCompleted || s == RequestCancelled
}

type UrgencyType string

const (
	UrgencyNormal     UrgencyType = "normal"
	UrgencyUrgent     UrgencyType = "urgent"
	UrgencyVeryUrgent UrgencyType = "very_urgent"
)

const DefaultUrgency = UrgencyNormal

func (u UrgencyType) String() string {
	return string(u)
}

type FreightRequestModify struct {
	ID           *int64
	Status       *RequestStatusType
	ShipperID    *int64
	FreightType  *FreightType
	Origin       *string
	Destination  *string
	CargoDetails *string
	Weight       *decimal.Decimal
	Dimensions   *string
	Deadline     *time.Time
	Urgency      *UrgencyType
	BudgetRange  *string
}

// RequestFilter - опциональные фильтры листинга.
type RequestFilter struct {
	FreightType *FreightType
	Status      *RequestStatusType
	MinWeight   *decimal.Decimal
	MaxWeight   *decimal.Decimal
}
