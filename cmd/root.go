package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/farebotics/faresim/internal/models"
	"github.com/farebotics/faresim/internal/simulator"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "faresim",
	Short: "Simulates airline fare offers and recommends the least painful one",
	Long:  `faresim is a CLI tool that simulates a synthetic market of airline flight offers over a booking horizon and recommends the itinerary with the lowest combined cost of price and inconvenience.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		if err := sim.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./faresim.yaml)")

	rootCmd.Flags().Int64("seed", 0, "Random seed for the market (0 seeds from the current time)")
	rootCmd.Flags().Int("days", models.DefaultDays, "Number of days in the booking horizon")
	rootCmd.Flags().String("start-date", time.Now().Format(time.RFC3339), "Date of day 0, used for reporting")
	rootCmd.Flags().String("format", "table", "Report format: table or json")
	rootCmd.Flags().Bool("progress", false, "Show a progress bar while generating offers")
	rootCmd.Flags().Int("patience-cost", models.DefaultDailyPatienceCost, "Pain added per day of waiting")
	rootCmd.Flags().Int("direct-value", models.DefaultDirectFlightValue, "Pain added for a layover")
	rootCmd.Flags().Int("good-time-value", models.DefaultGoodTimeValue, "Pain added for an awkward departure time")
	rootCmd.Flags().Int("premium-value", models.DefaultPremiumAirlineValue, "Pain removed for a premium airline")

	viper.BindPFlags(rootCmd.Flags())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("faresim")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
