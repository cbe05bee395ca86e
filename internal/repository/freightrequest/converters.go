package freightrequest

import (
	"service/internal/entities"
)

func ToDomain(r *FreightRequestDB) *entities.FreightRequest {
	if r == nil {
		return nil
	}

	return &entities.FreightRequest{
		ID:              r.ID,
		ShipperID:       r.ShipperID,
		FreightType:     entities.FreightType(r.FreightType),
		Origin:          r.Origin,
		Destination:     r.Destination,
		CargoDetails:    r.CargoDetails,
		Weight:          r.Weight,
		Dimensions:      r.Dimensions,
		Deadline:        r.Deadline,
		Status:          entities.RequestStatusType(r.Status),
		Urgency:         entities.UrgencyType(r.Urgency),
		BudgetRange:     r.BudgetRange,
		SelectedQuoteID: r.SelectedQuoteID,
		CreatedAt:       r.CreatedAt,
	}
}

func FromDomainModify(requestModify *entities.FreightRequestModify) *FreightRequestModifyDB {
	if requestModify == nil {
		return nil
	}
	requestDB := &FreightRequestModifyDB{
		ID:           requestModify.ID,
		ShipperID:    requestModify.ShipperID,
		Origin:       requestModify.Origin,
		Destination:  requestModify.Destination,
		CargoDetails: requestModify.CargoDetails,
		Weight:       requestModify.Weight,
		Dimensions:   requestModify.Dimensions,
		Deadline:     requestModify.Deadline,
		BudgetRange:  requestModify.BudgetRange,
	}

	if requestModify.FreightType != nil {
		freightType := requestModify.FreightType.String()
		requestDB.FreightType = &freightType
	}
	if requestModify.Urgency != nil {
		urgency := requestModify.Urgency.String()
		requestDB.Urgency = &urgency
	}

	return requestDB
}

func ToDomainList(requestsDB []FreightRequestDB) []entities.FreightRequest {
	if len(requestsDB) == 0 {
		return []entities.FreightRequest{}
	}

	result := make([]entities.FreightRequest, len(requestsDB))
	for i, requestDB := range requestsDB {
		result[i] = *ToDomain(&requestDB)
	}
	return result
}
