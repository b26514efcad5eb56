package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/farebotics/faresim/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMarket() *models.Market {
	return &models.Market{
		StartOffset: 2,
		Offers: []models.FlightOffer{
			{ID: "o0", DayIndex: 0, DayName: "Wed", Airline: models.AirlinePremiumBrand, AirlineTier: models.AirlineTierPremium, FlightNumber: "LU123", Origin: "Lagos", Destination: "Accra", IsDirect: true, Departure: models.TimeOfDay{Hour: 12, Quality: models.TimeQualityPrime}, Price: 950},
			{ID: "o1", DayIndex: 1, DayName: "Thu", Airline: models.AirlineBudgetBrand, AirlineTier: models.AirlineTierBudget, FlightNumber: "CH456", Origin: "Lagos", Destination: "Accra", IsDirect: false, Departure: models.TimeOfDay{Hour: 6, Quality: models.TimeQualityAwkward}, Price: 620},
			{ID: "o2", DayIndex: 2, DayName: "Fri", Airline: models.AirlineBudgetBrand, AirlineTier: models.AirlineTierBudget, FlightNumber: "CH789", Origin: "Lagos", Destination: "Accra", IsDirect: true, Departure: models.TimeOfDay{Hour: 9, Quality: models.TimeQualityStandard}, Price: 880},
		},
	}
}

func priceScore(o models.FlightOffer) int { return o.Price }

func TestWriteTableMarksSingleWinner(t *testing.T) {
	market := testMarket()
	best := &market.Offers[1]

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, market, best, priceScore))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "WINNER"))
	assert.Contains(t, out, "RECOMMENDATION: Day 1 (Thu) on CheapJet CH456")
	assert.Contains(t, out, "Lagos → Accra, 06:00, 1 Stop")
}

func TestWriteTableWithoutSelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, &models.Market{}, nil, priceScore))

	assert.Contains(t, buf.String(), "No flights available to recommend.")
	assert.NotContains(t, buf.String(), "RECOMMENDATION")
}

func TestWriteJSONRoundTrip(t *testing.T) {
	market := testMarket()
	best := &market.Offers[1]
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, market, best, priceScore, start))

	var report Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, 3, report.Days)
	assert.Equal(t, 2, report.StartOffset)
	assert.True(t, report.StartDate.Equal(start))
	require.Len(t, report.Offers, 3)
	require.NotNil(t, report.Best)
	assert.Equal(t, "o1", report.Best.ID)
	assert.Equal(t, 620, report.Best.Score)
}
