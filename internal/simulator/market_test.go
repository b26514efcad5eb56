package simulator

import (
	"testing"

	"github.com/farebotics/faresim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(seed int64) *Simulator {
	return NewSimulator(&models.Config{Seed: seed})
}

func TestGenerateMarketRejectsNonPositiveDays(t *testing.T) {
	sim := newTestSimulator(1)

	for _, days := range []int{0, -1, -30} {
		market, err := sim.GenerateMarket(days)
		require.Error(t, err, "days=%d", days)
		assert.Nil(t, market)
	}
}

func TestGenerateMarketSequence(t *testing.T) {
	sim := newTestSimulator(1)

	market, err := sim.GenerateMarket(45)
	require.NoError(t, err)
	require.Len(t, market.Offers, 45)

	for i, offer := range market.Offers {
		assert.Equal(t, i, offer.DayIndex)
	}
}

func TestGenerateMarketPriceFloor(t *testing.T) {
	sim := newTestSimulator(2)

	market, err := sim.GenerateMarket(500)
	require.NoError(t, err)

	for _, offer := range market.Offers {
		assert.GreaterOrEqual(t, offer.Price, 100)
	}
}

func TestGenerateMarketDayNames(t *testing.T) {
	sim := newTestSimulator(3)

	market, err := sim.GenerateMarket(60)
	require.NoError(t, err)
	require.GreaterOrEqual(t, market.StartOffset, 0)
	require.Less(t, market.StartOffset, 7)

	for _, offer := range market.Offers {
		assert.Equal(t, models.DaysOfWeek[(offer.DayIndex+market.StartOffset)%7], offer.DayName)
	}
}

func TestGenerateMarketTimeQualityPartition(t *testing.T) {
	sim := newTestSimulator(4)

	market, err := sim.GenerateMarket(200)
	require.NoError(t, err)

	for _, offer := range market.Offers {
		hour := offer.Departure.Hour
		assert.GreaterOrEqual(t, hour, 5)
		assert.LessOrEqual(t, hour, 23)
		assert.Equal(t, models.TimeQualityForHour(hour), offer.Departure.Quality)
	}
}

func TestGenerateMarketReproducibleWithSeed(t *testing.T) {
	first, err := newTestSimulator(42).GenerateMarket(90)
	require.NoError(t, err)
	second, err := newTestSimulator(42).GenerateMarket(90)
	require.NoError(t, err)

	require.Equal(t, first.StartOffset, second.StartOffset)
	require.Len(t, second.Offers, len(first.Offers))

	for i := range first.Offers {
		// IDs are fresh cuids per run; everything else must match.
		second.Offers[i].ID = first.Offers[i].ID
		assert.Equal(t, first.Offers[i], second.Offers[i])
	}
}

func TestGenerateMarketSeedsDiverge(t *testing.T) {
	first, err := newTestSimulator(1).GenerateMarket(30)
	require.NoError(t, err)
	second, err := newTestSimulator(2).GenerateMarket(30)
	require.NoError(t, err)

	prices := func(m *models.Market) []int {
		out := make([]int, len(m.Offers))
		for i, o := range m.Offers {
			out[i] = o.Price
		}
		return out
	}

	assert.NotEqual(t, prices(first), prices(second))
}
