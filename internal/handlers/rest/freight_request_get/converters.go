package freight_request_get

import (
	"service/internal/entities"
	"service/internal/generated/dto"
)

func toDTO(request entities.FreightRequest) dto.FreightRequest {
	requestDTO := dto.FreightRequest{
		ID:              request.ID,
		ShipperID:       request.ShipperID,
		Origin:          request.Origin,
		Destination:     request.Destination,
		FreightType:     request.FreightType.String(),
		CargoDetails:    request.CargoDetails,
		Dimensions:      request.Dimensions,
		BudgetRange:     request.BudgetRange,
		Deadline:        request.Deadline,
		Urgency:         request.Urgency.String(),
		Status:          request.Status.String(),
		SelectedQuoteID: request.SelectedQuoteID,
		CreatedAt:       request.CreatedAt,
	}

	if request.Weight != nil {
		weight := request.Weight.String()
		requestDTO.Weight = &weight
	}

	return requestDTO
}
