package matching

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserDB - строка users; наборы зон и специализаций хранятся как TEXT[]
// и сериализуются только на этой границе.
type UserDB struct {
	ID           int64
	Role         string
	CompanyName  string
	ServiceAreas []string
	Specialties  []string
	Rating       decimal.Decimal
	TotalRatings int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type OpenRequestDB struct {
	ID           int64
	ShipperID    int64
	FreightType  string
	Origin       string
	Destination  string
	CargoDetails string
	Weight       *decimal.Decimal
	Dimensions   *string
	Deadline     *time.Time
	Status       string
	Urgency      string
	BudgetRange  *string
	CreatedAt    time.Time
}
