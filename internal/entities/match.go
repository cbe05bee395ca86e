package entities

// MatchedRequest - открытый запрос с посчитанным match score для провайдера.
type MatchedRequest struct {
	Request FreightRequest
	Score   int32
}

const MaxMatchScore = 100
