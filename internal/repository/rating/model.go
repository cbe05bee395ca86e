package rating

import "time"

type RatingDB struct {
	ID               int64
	FreightRequestID int64
	ProviderID       int64
	ShipperID        int64
	Value            int32
	Review           string
	CreatedAt        time.Time
}

type RatingModifyDB struct {
	ID               *int64
	FreightRequestID *int64
	ProviderID       *int64
	ShipperID        *int64
	Value            *int32
	Review           *string
}
