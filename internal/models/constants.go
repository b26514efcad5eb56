package models

const (
	AirlineTierPremium = "Premium"
	AirlineTierBudget  = "Budget"

	AirlinePremiumBrand = "LuxAir"
	AirlineBudgetBrand  = "CheapJet"

	TimeQualityPrime    = "Prime"
	TimeQualityStandard = "Standard"
	TimeQualityAwkward  = "Awkward"

	// Offers departing fewer than this many days out carry a panic surcharge.
	LastMinuteWindow = 3

	DefaultDays = 30

	DefaultDailyPatienceCost   = 5
	DefaultDirectFlightValue   = 60
	DefaultGoodTimeValue       = 40
	DefaultPremiumAirlineValue = 50
)

var DaysOfWeek = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
