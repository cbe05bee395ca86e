package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleShipper  UserRole = "shipper"
	RoleProvider UserRole = "provider"
)

func (r UserRole) String() string {
	return string(r)
}

// Identity - проверенная внешним identity-provider личность вызывающего.
type Identity struct {
	UserID      int64
	Role        UserRole
	CompanyName string
}

type User struct {
	ID           int64
	Role         UserRole
	CompanyName  string
	ServiceAreas []string
	Specialties  []string
	Rating       decimal.Decimal
	TotalRatings int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProviderProfileModify - частичное обновление профиля: nil поле не трогаем.
type ProviderProfileModify struct {
	ID           *int64
	ServiceAreas *[]string
	Specialties  *[]string
}

type ProviderProfile struct {
	ID           int64
	ServiceAreas []string
	Specialties  []string
}
