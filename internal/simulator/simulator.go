package simulator

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/farebotics/faresim/internal/models"
	"github.com/farebotics/faresim/internal/output"
)

type Simulator struct {
	Config *models.Config
	Rng    *rand.Rand
}

// NewSimulator wires a simulator from config. A zero seed falls back to
// the wall clock, making the run non-reproducible.
func NewSimulator(config *models.Config) *Simulator {
	if config.Days == 0 {
		config.Days = models.DefaultDays
	}
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		Config: config,
		Rng:    rand.New(rand.NewSource(seed)),
	}
}

// Run generates the market, scores it, and writes the report to stdout.
func (s *Simulator) Run() error {
	startDate := s.Config.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}
	log.Printf("Simulating fares for %d days from %s\n", s.Config.Days, startDate.Format(time.RFC3339))

	market, err := s.GenerateMarket(s.Config.Days)
	if err != nil {
		return fmt.Errorf("market generation failed: %w", err)
	}

	scorer := NewScorer(s.Config.Weights())
	best := scorer.SelectBest(market.Offers)

	switch s.Config.OutputFormat {
	case "json":
		return output.WriteJSON(os.Stdout, market, best, scorer.Score, startDate)
	case "", "table":
		return output.WriteTable(os.Stdout, market, best, scorer.Score)
	default:
		return fmt.Errorf("unknown report format %q", s.Config.OutputFormat)
	}
}
