package rating

import (
	"service/internal/entities"
)

func ToDomain(r *RatingDB) *entities.Rating {
	if r == nil {
		return nil
	}

	return &entities.Rating{
		ID:               r.ID,
		FreightRequestID: r.FreightRequestID,
		ProviderID:       r.ProviderID,
		ShipperID:        r.ShipperID,
		Value:            r.Value,
		Review:           r.Review,
		CreatedAt:        r.CreatedAt,
	}
}

func FromDomainModify(ratingModify *entities.RatingModify) *RatingModifyDB {
	if ratingModify == nil {
		return nil
	}

	return &RatingModifyDB{
		ID:               ratingModify.ID,
		FreightRequestID: ratingModify.FreightRequestID,
		ProviderID:       ratingModify.ProviderID,
		ShipperID:        ratingModify.ShipperID,
		Value:            ratingModify.Value,
		Review:           ratingModify.Review,
	}
}

func ToDomainList(ratingsDB []RatingDB) []entities.Rating {
	if len(ratingsDB) == 0 {
		return []entities.Rating{}
	}

	result := make([]entities.Rating, len(ratingsDB))
	for i, ratingDB := range ratingsDB {
		result[i] = *ToDomain(&ratingDB)
	}
	return result
}
