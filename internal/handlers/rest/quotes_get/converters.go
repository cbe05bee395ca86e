package quotes_get

import (
	"service/internal/entities"
	"service/internal/generated/dto"
)

func toDTO(annotated entities.AnnotatedQuote) dto.Quote {
	return dto.Quote{
		ID:                    annotated.ID,
		FreightRequestID:      annotated.FreightRequestID,
		ProviderID:            annotated.ProviderID,
		ProviderCompanyName:   annotated.ProviderCompanyName,
		ProviderRating:        annotated.ProviderRating.String(),
		Price:                 annotated.Price.String(),
		EstimatedDeliveryDate: annotated.EstimatedDelivery,
		Description:           annotated.Description,
		Status:                annotated.Status.String(),
		ValidUntil:            annotated.ValidUntil,
		Terms:                 annotated.Terms,
		InsuranceCoverage:     annotated.InsuranceCoverage.String(),
		CreatedAt:             annotated.CreatedAt,
	}
}
