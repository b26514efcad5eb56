package models

import "fmt"

// TimeOfDay is the departure slot of an offer. Quality is derived from
// Hour and determines the time-of-day price adjustment and score penalty.
type TimeOfDay struct {
	Hour    int    `json:"hour"`
	Quality string `json:"quality"`
}

// FlightOffer is one simulated itinerary for a specific day offset.
// Offers are immutable once generated.
type FlightOffer struct {
	ID           string    `json:"id"`
	DayIndex     int       `json:"day_index"`
	DayName      string    `json:"day_name"`
	Airline      string    `json:"airline"`
	AirlineTier  string    `json:"airline_tier"` // "Premium" or "Budget"
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	IsDirect     bool      `json:"is_direct"`
	Departure    TimeOfDay `json:"departure"`
	Price        int       `json:"price"`
}

// DepartureTime formats the drawn hour as a wall-clock time, e.g. "07:00".
func (f FlightOffer) DepartureTime() string {
	return fmt.Sprintf("%02d:00", f.Departure.Hour)
}

// Market is one generation run: an ordered sequence of offers, one per
// day, plus the start offset that anchored day 0 to a day of the week.
type Market struct {
	Offers      []FlightOffer `json:"offers"`
	StartOffset int           `json:"start_offset"`
}

// TimeQualityForHour buckets a departure hour into exactly one quality.
func TimeQualityForHour(hour int) string {
	switch {
	case hour >= 10 && hour <= 16:
		return TimeQualityPrime
	case hour < 8 || hour > 20:
		return TimeQualityAwkward
	default:
		return TimeQualityStandard
	}
}
