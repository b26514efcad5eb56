package factories

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/farebotics/faresim/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

const (
	premiumTierModifier = 50
	budgetTierModifier  = -30
	directModifier      = 20
	layoverModifier     = -60
	weekendSurcharge    = 80
	midweekDiscount     = 40
	lastMinuteSpike     = 150
	primeTimeSurcharge  = 30
	awkwardTimeDiscount = 30
	minOfferPrice       = 100

	premiumTierChance = 0.5
	layoverChance     = 0.40
)

// FlightOfferFactory builds the offers of a single market run. The route
// is fixed per factory; itinerary metadata comes from a seeded faker so a
// seeded run reproduces it.
type FlightOfferFactory struct {
	fake        faker.Faker
	origin      string
	destination string
}

func NewFlightOfferFactory(seed int64) *FlightOfferFactory {
	fake := faker.NewWithSeed(rand.NewSource(seed))
	return &FlightOfferFactory{
		fake:        fake,
		origin:      fake.Address().City(),
		destination: fake.Address().City(),
	}
}

// CreateFlightOffer prices one itinerary for dayIndex off the market's
// current base price. Draw order on rng is fixed: airline tier, flight
// type, departure hour. Reordering would change every seeded run.
func (ff *FlightOfferFactory) CreateFlightOffer(rng *rand.Rand, dayIndex, basePrice, startOffset int) models.FlightOffer {
	dayName := models.DaysOfWeek[(dayIndex+startOffset)%7]

	// Market segmentation: premium carriers price above budget ones.
	var tier, airline string
	var modifier int
	if rng.Float64() < premiumTierChance {
		tier = models.AirlineTierPremium
		airline = models.AirlinePremiumBrand
		modifier = premiumTierModifier
	} else {
		tier = models.AirlineTierBudget
		airline = models.AirlineBudgetBrand
		modifier = budgetTierModifier
	}

	// Direct flights are the rarer outcome and command a premium.
	isDirect := true
	if rng.Float64() < layoverChance {
		isDirect = false
		modifier += layoverModifier
	} else {
		modifier += directModifier
	}

	price := basePrice + modifier

	// Yield management: Fri/Sun are high demand, Tue/Wed dip.
	switch dayName {
	case "Fri", "Sun":
		price += weekendSurcharge
	case "Tue", "Wed":
		price -= midweekDiscount
	}

	// Booking 0-2 days out pays the panic spike.
	if dayIndex < models.LastMinuteWindow {
		price += lastMinuteSpike
	}

	hour := 5 + rng.Intn(19)
	quality := models.TimeQualityForHour(hour)
	switch quality {
	case models.TimeQualityPrime:
		price += primeTimeSurcharge
	case models.TimeQualityAwkward:
		price -= awkwardTimeDiscount
	}

	if price < minOfferPrice {
		price = minOfferPrice
	}

	return models.FlightOffer{
		ID:           cuid.New(),
		DayIndex:     dayIndex,
		DayName:      dayName,
		Airline:      airline,
		AirlineTier:  tier,
		FlightNumber: ff.flightNumber(airline),
		Origin:       ff.origin,
		Destination:  ff.destination,
		IsDirect:     isDirect,
		Departure:    models.TimeOfDay{Hour: hour, Quality: quality},
		Price:        price,
	}
}

func (ff *FlightOfferFactory) flightNumber(airline string) string {
	prefix := strings.ToUpper(airline[:2])
	return fmt.Sprintf("%s%d", prefix, ff.fake.IntBetween(100, 999))
}
