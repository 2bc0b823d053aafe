package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tmarchal/chamber/pkg/chart"
	"github.com/tmarchal/chamber/pkg/config"
	"github.com/tmarchal/chamber/pkg/eventlog"
	"github.com/tmarchal/chamber/pkg/simulation"
)

var (
	configFile       string
	logFile          string
	capacity         int
	showTimeline     bool
	timelineLimit    int
	showEventSummary bool
)

var rootCmd = &cobra.Command{
	Use:   "chamber [visitor-list]",
	Short: "Chamber Admission Simulator",
	Long: `A CLI tool that simulates concurrent visitors sharing a single chamber.

Students and Admins batch up to the configured capacity as long as they are
of the same kind; Online meetings occupy the chamber exclusively. The tool
reads a visitor list file, replays the arrivals with their inter-arrival
delays, records every admission event to a log file, and renders an
occupancy chart with warnings for visitors that cut ahead of earlier
arrivals.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulation,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (optional)")
	rootCmd.Flags().StringVarP(&logFile, "log", "o", "chamber.log", "Path to the event log file")
	rootCmd.Flags().IntVarP(&capacity, "capacity", "k", 0, "Chamber capacity for in-person sessions (overrides config)")
	rootCmd.Flags().BoolVarP(&showTimeline, "timeline", "t", false, "Show detailed timeline of events")
	rootCmd.Flags().IntVarP(&timelineLimit, "timeline-limit", "l", 50, "Limit number of timeline events to display")
	rootCmd.Flags().BoolVarP(&showEventSummary, "summary", "s", true, "Show event summary")
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func runSimulation(cmd *cobra.Command, args []string) error {
	log := newLogger()

	// Load configuration
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if capacity > 0 {
		cfg.Capacity = capacity
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	visitors, err := config.LoadVisitorList(args[0], cfg.ArrivalStagger)
	if err != nil {
		return err
	}

	log.Info().
		Str("visitorList", args[0]).
		Int("capacity", cfg.Capacity).
		Dur("inPersonDuration", cfg.InPersonDuration).
		Dur("onlineDuration", cfg.OnlineDuration).
		Str("fairness", string(cfg.Fairness)).
		Int("visitors", len(visitors)).
		Msg("configuration loaded")

	sink, err := eventlog.NewFileSink(logFile, os.Stdout, log)
	if err != nil {
		return err
	}
	defer sink.Close()

	// Create and run simulator
	sim := simulation.NewSimulator(cfg, visitors, sink, log)
	if err := sim.Run(); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	// Generate and display chart
	chartGen := chart.NewGenerator()

	timePoints := sim.GetTimePoints()
	events := sim.GetEvents()
	warnings := sim.GetWarnings()

	// Display occupancy chart
	occupancyChart := chartGen.GenerateOccupancyChart(timePoints, cfg.Capacity)
	fmt.Println(occupancyChart)

	// Display event summary
	if showEventSummary {
		eventSummary := chartGen.GenerateEventSummary(events)
		fmt.Println(eventSummary)
	}

	// Display warnings
	warningsOutput := chartGen.GenerateWarnings(warnings)
	fmt.Println(warningsOutput)

	// Display detailed timeline if requested
	if showTimeline {
		timeline := chartGen.GenerateDetailedTimeline(events, timelineLimit)
		fmt.Println(timeline)
	}

	log.Info().
		Str("log", logFile).
		Str("duration", chart.FormatDuration(sim.Duration())).
		Msg("event log written")

	return nil
}
