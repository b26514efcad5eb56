package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/farebotics/faresim/internal/models"
)

// ScoreFunc returns the pain score used to rank an offer.
type ScoreFunc func(models.FlightOffer) int

// WriteTable renders the market as a fixed-width table with per-offer
// notes, followed by the recommendation summary.
func WriteTable(w io.Writer, market *models.Market, best *models.FlightOffer, score ScoreFunc) error {
	fmt.Fprintf(w, "\n%-4s | %-4s | %-7s | %-9s | %-7s | %-6s | %s\n",
		"DAY", "DOW", "FLIGHT", "AIRLINE", "PRICE", "SCORE", "NOTES")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, offer := range market.Offers {
		sc := score(offer)
		fmt.Fprintf(w, "%-4d | %-4s | %-7s | %-9s | $%-6d | %-6d | %s\n",
			offer.DayIndex, offer.DayName, offer.FlightNumber, offer.Airline, offer.Price, sc, offerNote(offer, best, sc))
	}

	fmt.Fprintln(w, strings.Repeat("-", 80))
	if best == nil {
		fmt.Fprintln(w, "No flights available to recommend.")
		return nil
	}

	fmt.Fprintf(w, "🤖 RECOMMENDATION: Day %d (%s) on %s %s\n", best.DayIndex, best.DayName, best.Airline, best.FlightNumber)
	fmt.Fprintf(w, "   • Actual Price: $%d\n", best.Price)
	fmt.Fprintf(w, "   • Details: %s → %s, %s, %s\n", best.Origin, best.Destination, best.DepartureTime(), stopLabel(best.IsDirect))

	if best.AirlineTier == models.AirlineTierPremium {
		fmt.Fprintln(w, "   • Logic: The premium airline was chosen because the comfort justified the cost.")
	}
	if best.DayName == "Tue" || best.DayName == "Wed" {
		fmt.Fprintln(w, "   • Logic: A mid-week flight was selected to avoid weekend surcharges.")
	}
	return nil
}

func offerNote(offer models.FlightOffer, best *models.FlightOffer, score int) string {
	switch {
	case best != nil && offer.ID == best.ID:
		return "✅ WINNER"
	case offer.DayIndex < models.LastMinuteWindow:
		return "❌ Last Minute Panic"
	case (offer.DayName == "Fri" || offer.DayName == "Sun") && score > offer.Price:
		return "⚠️ Weekend Premium"
	case offer.AirlineTier == models.AirlineTierPremium && score < offer.Price:
		return "💎 Luxury Value"
	default:
		return ""
	}
}

func stopLabel(isDirect bool) string {
	if isDirect {
		return "Direct"
	}
	return "1 Stop"
}
