package matching

import (
	"service/internal/entities"
)

func ToProviderDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:           u.ID,
		Role:         entities.UserRole(u.Role),
		CompanyName:  u.CompanyName,
		ServiceAreas: u.ServiceAreas,
		Specialties:  u.Specialties,
		Rating:       u.Rating,
		TotalRatings: u.TotalRatings,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func ToRequestDomain(r *OpenRequestDB) *entities.FreightRequest {
	if r == nil {
		return nil
	}

	return &entities.FreightRequest{
		ID:           r.ID,
		ShipperID:    r.ShipperID,
		FreightType:  entities.FreightType(r.FreightType),
		Origin:       r.Origin,
		Destination:  r.Destination,
		CargoDetails: r.CargoDetails,
		Weight:       r.Weight,
		Dimensions:   r.Dimensions,
		Deadline:     r.Deadline,
		Status:       entities.RequestStatusType(r.Status),
		Urgency:      entities.UrgencyType(r.Urgency),
		BudgetRange:  r.BudgetRange,
		CreatedAt:    r.CreatedAt,
	}
}

func ToRequestDomainList(requestsDB []OpenRequestDB) []entities.FreightRequest {
	if len(requestsDB) == 0 {
		return []entities.FreightRequest{}
	}

	result := make([]entities.FreightRequest, len(requestsDB))
	for i, requestDB := range requestsDB {
		result[i] = *ToRequestDomain(&requestDB)
	}
	return result
}
