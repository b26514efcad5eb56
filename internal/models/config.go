package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ScoreWeights are the monetary values of comfort and inconvenience used
// by the pain score. All values are in the same unit as offer prices.
type ScoreWeights struct {
	DailyPatienceCost   int `mapstructure:"daily_patience_cost" json:"daily_patience_cost"`
	DirectFlightValue   int `mapstructure:"direct_flight_value" json:"direct_flight_value"`
	GoodTimeValue       int `mapstructure:"good_time_value" json:"good_time_value"`
	PremiumAirlineValue int `mapstructure:"premium_airline_value" json:"premium_airline_value"`
}

func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		DailyPatienceCost:   DefaultDailyPatienceCost,
		DirectFlightValue:   DefaultDirectFlightValue,
		GoodTimeValue:       DefaultGoodTimeValue,
		PremiumAirlineValue: DefaultPremiumAirlineValue,
	}
}

type Config struct {
	Seed          int64     `mapstructure:"seed"`
	Days          int       `mapstructure:"days"`
	StartDate     time.Time `mapstructure:"start-date"`
	OutputFormat  string    `mapstructure:"format"`
	ShowProgress  bool      `mapstructure:"progress"`
	PatienceCost  int       `mapstructure:"patience-cost"`
	DirectValue   int       `mapstructure:"direct-value"`
	GoodTimeValue int       `mapstructure:"good-time-value"`
	PremiumValue  int       `mapstructure:"premium-value"`
}

// Weights returns the configured score weights, falling back to the
// documented defaults when none are set.
func (cfg *Config) Weights() ScoreWeights {
	w := ScoreWeights{
		DailyPatienceCost:   cfg.PatienceCost,
		DirectFlightValue:   cfg.DirectValue,
		GoodTimeValue:       cfg.GoodTimeValue,
		PremiumAirlineValue: cfg.PremiumValue,
	}
	if w == (ScoreWeights{}) {
		return DefaultScoreWeights()
	}
	return w
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath(".")
		viper.SetConfigName("faresim")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional unless one was named explicitly
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
