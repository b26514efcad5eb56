package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/farebotics/faresim/internal/models"
)

type ScoredOffer struct {
	models.FlightOffer
	Score int `json:"score"`
}

type Report struct {
	GeneratedAt time.Time     `json:"generated_at"`
	StartDate   time.Time     `json:"start_date"`
	Days        int           `json:"days"`
	StartOffset int           `json:"start_offset"`
	Offers      []ScoredOffer `json:"offers"`
	Best        *ScoredOffer  `json:"best,omitempty"`
}

// WriteJSON renders the market and the selected offer as an indented
// JSON report.
func WriteJSON(w io.Writer, market *models.Market, best *models.FlightOffer, score ScoreFunc, startDate time.Time) error {
	report := Report{
		GeneratedAt: time.Now().UTC(),
		StartDate:   startDate,
		Days:        len(market.Offers),
		StartOffset: market.StartOffset,
		Offers:      make([]ScoredOffer, 0, len(market.Offers)),
	}

	for _, offer := range market.Offers {
		report.Offers = append(report.Offers, ScoredOffer{FlightOffer: offer, Score: score(offer)})
	}
	if best != nil {
		report.Best = &ScoredOffer{FlightOffer: *best, Score: score(*best)}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
