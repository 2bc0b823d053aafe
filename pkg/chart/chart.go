package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/tmarchal/chamber/pkg/chamber"
	"github.com/tmarchal/chamber/pkg/simulation"
)

const (
	chartWidth = 80
)

// Generator generates ASCII charts
type Generator struct {
	width int
}

// NewGenerator creates a new chart generator
func NewGenerator() *Generator {
	return &Generator{
		width: chartWidth,
	}
}

// GenerateOccupancyChart generates an ASCII chart showing chamber occupancy
// over time, with waiting visitors stacked above the occupancy rows.
func (g *Generator) GenerateOccupancyChart(timePoints []simulation.TimePoint, capacity int) string {
	if len(timePoints) == 0 {
		return "No data to display"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\n")
	sb.WriteString("Chamber Occupancy Over Time\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	// Find max waiting visitors to determine chart height
	maxWaiting := 0
	for _, tp := range timePoints {
		if tp.Waiting > maxWaiting {
			maxWaiting = tp.Waiting
		}
	}

	totalRows := capacity + maxWaiting
	plotWidth := g.width - 6

	pointAt := func(x int) simulation.TimePoint {
		pointIndex := int(float64(x) / float64(plotWidth) * float64(len(timePoints)-1))
		if pointIndex >= len(timePoints) {
			pointIndex = len(timePoints) - 1
		}
		return timePoints[pointIndex]
	}

	// Build the chart from top to bottom. First draw waiting rows (if any).
	for row := totalRows; row > capacity; row-- {
		// Y-axis label
		sb.WriteString(fmt.Sprintf("%3d |", row))

		for x := 0; x < len(timePoints) && x < plotWidth; x++ {
			tp := pointAt(x)
			waitingRow := row - capacity

			if waitingRow <= tp.Waiting {
				// Show waiting visitor
				sb.WriteString("*")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// Separator line between waiting rows and occupancy slots
	if maxWaiting > 0 {
		sb.WriteString("    ")
		sb.WriteString(strings.Repeat("-", g.width-4))
		sb.WriteString("\n")
	}

	// Draw occupancy slots (capacity down to 1)
	for slot := capacity; slot >= 1; slot-- {
		// Y-axis label
		sb.WriteString(fmt.Sprintf("%3d |", slot))

		for x := 0; x < len(timePoints) && x < plotWidth; x++ {
			tp := pointAt(x)

			if tp.Occupants >= slot {
				// This slot is occupied
				sb.WriteString("█")
			} else {
				// This slot is free
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis
	sb.WriteString("    +")
	sb.WriteString(strings.Repeat("-", plotWidth))
	sb.WriteString("\n")

	// X-axis labels - show marks every second of the run
	startTime := timePoints[0].Time
	endTime := timePoints[len(timePoints)-1].Time
	totalDuration := endTime.Sub(startTime)

	labelLine := make([]rune, plotWidth)
	for i := range labelLine {
		labelLine[i] = ' '
	}

	second := 0
	for {
		offset := time.Duration(second) * time.Second
		if offset > totalDuration {
			break
		}

		position := 0
		if totalDuration > 0 {
			position = int(float64(offset) / float64(totalDuration) * float64(plotWidth))
		}

		marker := fmt.Sprintf("%ds", second)
		if position+len(marker) <= plotWidth {
			for i, ch := range marker {
				labelLine[position+i] = ch
			}
		}

		second++
	}

	sb.WriteString("    ")
	sb.WriteString(string(labelLine))
	sb.WriteString("\n")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("Legend:\n")
	sb.WriteString(fmt.Sprintf("  Chamber slots (1-%d):\n", capacity))
	sb.WriteString("    █ - Occupied slot\n")
	sb.WriteString("    (space) - Free slot\n")
	if maxWaiting > 0 {
		sb.WriteString(fmt.Sprintf("  Waiting rows (>%d):\n", capacity))
		sb.WriteString("    * - Visitor waiting for admission\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// GenerateEventSummary generates a summary of events
func (g *Generator) GenerateEventSummary(events []chamber.Event) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Event Summary\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	// Group events by type
	eventsByType := make(map[chamber.EventType]int)
	cutIns := 0
	for _, event := range events {
		eventsByType[event.Type]++
		if event.Type == chamber.EventEntered && event.Skipped > 0 {
			cutIns++
		}
	}

	sb.WriteString(fmt.Sprintf("Total Events: %d\n", len(events)))
	sb.WriteString(fmt.Sprintf("  - Arrived: %d\n", eventsByType[chamber.EventArrived]))
	sb.WriteString(fmt.Sprintf("  - Entered (in-person): %d\n", eventsByType[chamber.EventEntered]))
	sb.WriteString(fmt.Sprintf("  - Left (in-person): %d\n", eventsByType[chamber.EventLeft]))
	sb.WriteString(fmt.Sprintf("  - Started (online): %d\n", eventsByType[chamber.EventStarted]))
	sb.WriteString(fmt.Sprintf("  - Ended (online): %d\n", eventsByType[chamber.EventEnded]))
	sb.WriteString(fmt.Sprintf("  - Cut-ins ahead of earlier arrivals: %d\n", cutIns))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateWarnings generates a list of warnings
func (g *Generator) GenerateWarnings(warnings []chamber.Event) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Warnings\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	if len(warnings) == 0 {
		sb.WriteString("No warnings!\n")
		return sb.String()
	}

	for _, warning := range warnings {
		timestamp := warning.Time.Format("15:04:05.000")
		sb.WriteString(fmt.Sprintf("[%s] %s (%s) cut ahead of %d earlier arrival(s)\n",
			timestamp, warning.Name, warning.Kind.DisplayName(), warning.Skipped))
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total Warnings: %d\n", len(warnings)))
	sb.WriteString("\n")

	return sb.String()
}

// GenerateDetailedTimeline generates a detailed timeline of events
func (g *Generator) GenerateDetailedTimeline(events []chamber.Event, limit int) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("Detailed Timeline")
	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf(" (showing first %d events)", limit))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")

	displayCount := len(events)
	if limit > 0 && limit < displayCount {
		displayCount = limit
	}

	for i := 0; i < displayCount; i++ {
		event := events[i]
		timestamp := event.Time.Format("15:04:05.000")

		typeIcon := " "
		switch event.Type {
		case chamber.EventArrived:
			typeIcon = "Q"
		case chamber.EventEntered, chamber.EventStarted:
			typeIcon = "+"
		case chamber.EventLeft, chamber.EventEnded:
			typeIcon = "-"
		}
		if event.IsWarning {
			typeIcon = "!"
		}

		sb.WriteString(fmt.Sprintf("[%s] %s [%d] %s\n",
			timestamp,
			typeIcon,
			event.Occupants,
			event.Message))
	}

	if limit > 0 && limit < len(events) {
		sb.WriteString(fmt.Sprintf("\n... and %d more events\n", len(events)-limit))
	}

	sb.WriteString("\n")

	return sb.String()
}

// FormatDuration formats a duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
