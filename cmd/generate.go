package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tmarchal/chamber/pkg/schedule"
)

var (
	scheduleFile string
	outputFile   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a visitor list from a cron-based arrival schedule",
	Long: `Expands a schedule file of recurring arrivals (cron expressions per
visitor kind) over a time horizon and writes the resulting visitor list,
ordered by firing time, to a file the simulator can replay.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&scheduleFile, "schedule", "c", "schedule.yaml", "Path to schedule file")
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "visitors.txt", "Path to the generated visitor list")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	sched, err := schedule.Load(scheduleFile)
	if err != nil {
		return fmt.Errorf("failed to load schedule: %w", err)
	}

	visitors, err := sched.Expand()
	if err != nil {
		return fmt.Errorf("failed to expand schedule: %w", err)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create visitor list: %w", err)
	}
	defer f.Close()

	if err := schedule.WriteList(f, visitors); err != nil {
		return err
	}

	log.Info().
		Str("schedule", scheduleFile).
		Str("output", outputFile).
		Int("visitors", len(visitors)).
		Msg("visitor list generated")

	return nil
}
