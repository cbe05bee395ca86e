package matching

import (
	"slices"

	"github.com/shopspring/decimal"
	"service/internal/entities"
)

const (
	originPoints      = 30
	destinationPoints = 30
	specialtyPoints   = 20
	maxRatingPoints   = 20
	ratingMultiplier  = 4
)

// Score считает match score запроса для провайдера. Чистая функция:
// совпадение локаций и специализации строгое строковое, рейтинг дает
// до 20 очков (maxRatingPoints при рейтинге 5.0), максимум 100.
func Score(request entities.FreightRequest, provider entities.User) int32 {
	var score int32

	if slices.Contains(provider.ServiceAreas, request.Origin) {
		score += originPoints
	}
	if slices.Contains(provider.ServiceAreas, request.Destination) {
		score += destinationPoints
	}
	if slices.Contains(provider.Specialties, request.FreightType.String()) {
		score += specialtyPoints
	}

	ratingPoints := provider.Rating.Mul(decimal.NewFromInt(ratingMultiplier))
	ratingCap := decimal.NewFromInt(maxRatingPoints)
	if ratingPoints.GreaterThan(ratingCap) {
		ratingPoints = ratingCap
	}
	if ratingPoints.IsPositive() {
		score += int32(ratingPoints.IntPart())
	}

	return score
}
