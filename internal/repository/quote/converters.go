package quote

import (
	"service/internal/entities"
)

func ToDomain(q *QuoteDB) *entities.Quote {
	if q == nil {
		return nil
	}

	return &entities.Quote{
		ID:                q.ID,
		FreightRequestID:  q.FreightRequestID,
		ProviderID:        q.ProviderID,
		Price:             q.Price,
		EstimatedDelivery: q.EstimatedDelivery,
		Description:       q.Description,
		Status:            entities.QuoteStatusType(q.Status),
		ValidUntil:        q.ValidUntil,
		Terms:             q.Terms,
		InsuranceCoverage: q.InsuranceCoverage,
		CreatedAt:         q.CreatedAt,
	}
}

func ToAnnotatedDomain(q *AnnotatedQuoteDB) *entities.AnnotatedQuote {
	if q == nil {
		return nil
	}

	return &entities.AnnotatedQuote{
		Quote:               *ToDomain(&q.QuoteDB),
		ProviderCompanyName: q.ProviderCompanyName,
		ProviderRating:      q.ProviderRating,
	}
}

func FromDomainModify(quoteModify *entities.QuoteModify) *QuoteModifyDB {
	if quoteModify == nil {
		return nil
	}
	quoteDB := &QuoteModifyDB{
		ID:                quoteModify.ID,
		FreightRequestID:  quoteModify.FreightRequestID,
		ProviderID:        quoteModify.ProviderID,
		Price:             quoteModify.Price,
		EstimatedDelivery: quoteModify.EstimatedDelivery,
		Description:       quoteModify.Description,
		ValidUntil:        quoteModify.ValidUntil,
		Terms:             quoteModify.Terms,
		InsuranceCoverage: quoteModify.InsuranceCoverage,
	}

	if quoteModify.Status != nil {
		status := quoteModify.Status.String()
		quoteDB.Status = &status
	}

	return quoteDB
}

func requestToDomain(r *requestDB) *entities.FreightRequest {
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

func ToAnnotatedDomainList(quotesDB []AnnotatedQuoteDB) []entities.AnnotatedQuote {
	if len(quotesDB) == 0 {
		return []entities.AnnotatedQuote{}
	}

	result := make([]entities.AnnotatedQuote, len(quotesDB))
	for i, quoteDB := range quotesDB {
		result[i] = *ToAnnotatedDomain(&quoteDB)
	}
	return result
}
