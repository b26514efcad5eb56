package simulator

import "github.com/farebotics/faresim/internal/models"

// Scorer converts an offer's attributes into a single comparable pain
// score. Lower is better.
type Scorer struct {
	weights models.ScoreWeights
}

func NewScorer(weights models.ScoreWeights) Scorer {
	return Scorer{weights: weights}
}

// Score is a weighted sum: the price, plus the cost of waiting, plus
// virtual costs for a layover and an awkward departure, minus the value
// of a premium carrier. Pure function of the offer's attributes.
func (sc Scorer) Score(offer models.FlightOffer) int {
	score := offer.Price
	score += offer.DayIndex * sc.weights.DailyPatienceCost
	if !offer.IsDirect {
		score += sc.weights.DirectFlightValue
	}
	if offer.Departure.Quality == models.TimeQualityAwkward {
		score += sc.weights.GoodTimeValue
	}
	if offer.AirlineTier == models.AirlineTierPremium {
		score -= sc.weights.PremiumAirlineValue
	}
	return score
}

// SelectBest returns the offer with the lowest score. The comparison is
// strictly-less-than, so the first offer reaching the minimum wins ties.
// Returns nil for an empty slice.
func (sc Scorer) SelectBest(offers []models.FlightOffer) *models.FlightOffer {
	if len(offers) == 0 {
		return nil
	}

	best := &offers[0]
	bestScore := sc.Score(offers[0])
	for i := 1; i < len(offers); i++ {
		if score := sc.Score(offers[i]); score < bestScore {
			best = &offers[i]
			bestScore = score
		}
	}
	return best
}
