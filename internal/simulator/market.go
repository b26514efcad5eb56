package simulator

import (
	"fmt"

	"github.com/farebotics/faresim/internal/factories"
	"github.com/farebotics/faresim/internal/models"
	"github.com/schollz/progressbar/v3"
)

const (
	basePriceLow  = 700
	basePriceHigh = 1100
	minBasePrice  = 200
	maxDailyDrift = 60
)

// GenerateMarket produces one offer per day for the booking horizon.
// The base price random-walks across days: each day is priced off the
// current base, then the base drifts by a step in [-maxDailyDrift,
// maxDailyDrift] and is floored. Day k+1's price therefore depends on
// every prior day's drift, so the loop is inherently sequential.
func (s *Simulator) GenerateMarket(days int) (*models.Market, error) {
	if days <= 0 {
		return nil, fmt.Errorf("day count must be positive, got %d", days)
	}

	basePrice := basePriceLow + s.Rng.Intn(basePriceHigh-basePriceLow+1)
	startOffset := s.Rng.Intn(7)

	factory := factories.NewFlightOfferFactory(s.Rng.Int63())

	var bar *progressbar.ProgressBar
	if s.Config != nil && s.Config.ShowProgress {
		bar = progressbar.Default(int64(days), "generating offers")
	}

	offers := make([]models.FlightOffer, 0, days)
	for day := 0; day < days; day++ {
		offers = append(offers, factory.CreateFlightOffer(s.Rng, day, basePrice, startOffset))

		// Volatility: the market drifts after each day is priced.
		basePrice += s.Rng.Intn(2*maxDailyDrift+1) - maxDailyDrift
		if basePrice < minBasePrice {
			basePrice = minBasePrice
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return &models.Market{Offers: offers, StartOffset: startOffset}, nil
}
