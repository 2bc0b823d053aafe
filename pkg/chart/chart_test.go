package chart

import (
	"strings"
	"testing"
	"time"

	"github.com/tmarchal/chamber/pkg/chamber"
	"github.com/tmarchal/chamber/pkg/simulation"
)

func TestGenerateEventSummary(t *testing.T) {
	events := []chamber.Event{
		{Type: chamber.EventArrived},
		{Type: chamber.EventArrived},
		{Type: chamber.EventEntered, Skipped: 1, IsWarning: true},
		{Type: chamber.EventLeft},
		{Type: chamber.EventStarted},
		{Type: chamber.EventEnded},
	}

	summary := NewGenerator().GenerateEventSummary(events)
	for _, want := range []string{
		"Total Events: 6",
		"Arrived: 2",
		"Entered (in-person): 1",
		"Started (online): 1",
		"Cut-ins ahead of earlier arrivals: 1",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestGenerateWarnings(t *testing.T) {
	gen := NewGenerator()

	if out := gen.GenerateWarnings(nil); !strings.Contains(out, "No warnings!") {
		t.Errorf("empty warnings output = %q", out)
	}

	warnings := []chamber.Event{
		{Type: chamber.EventEntered, Name: "S2", Kind: chamber.KindStudent, Skipped: 2, IsWarning: true},
	}
	out := gen.GenerateWarnings(warnings)
	if !strings.Contains(out, "S2 (Student) cut ahead of 2 earlier arrival(s)") {
		t.Errorf("warnings output = %q", out)
	}
	if !strings.Contains(out, "Total Warnings: 1") {
		t.Errorf("warnings output missing total: %q", out)
	}
}

func TestGenerateOccupancyChart(t *testing.T) {
	start := time.Now()
	points := []simulation.TimePoint{
		{Time: start, Occupants: 0, Waiting: 0},
		{Time: start.Add(10 * time.Millisecond), Occupants: 2, Waiting: 1},
		{Time: start.Add(20 * time.Millisecond), Occupants: 1, Waiting: 0},
	}

	out := NewGenerator().GenerateOccupancyChart(points, 2)
	if !strings.Contains(out, "Chamber Occupancy Over Time") {
		t.Errorf("chart missing header:\n%s", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("chart shows no occupancy:\n%s", out)
	}
	if !strings.Contains(out, "Visitor waiting for admission") {
		t.Errorf("chart missing waiting legend:\n%s", out)
	}

	if out := NewGenerator().GenerateOccupancyChart(nil, 2); out != "No data to display" {
		t.Errorf("empty chart = %q", out)
	}
}

func TestGenerateDetailedTimeline(t *testing.T) {
	events := []chamber.Event{
		{Type: chamber.EventArrived, Message: "S1 (Student) ARRIVED and queued."},
		{Type: chamber.EventEntered, Occupants: 1, Message: "S1 (Student) ENTERED the chamber. [count=1]"},
		{Type: chamber.EventLeft, Message: "S1 (Student) LEFT the chamber. [count=0]"},
	}

	out := NewGenerator().GenerateDetailedTimeline(events, 2)
	if !strings.Contains(out, "showing first 2 events") {
		t.Errorf("timeline missing limit note:\n%s", out)
	}
	if !strings.Contains(out, "ENTERED the chamber") {
		t.Errorf("timeline missing event message:\n%s", out)
	}
	if strings.Contains(out, "LEFT the chamber") {
		t.Errorf("timeline shows events past the limit:\n%s", out)
	}
	if !strings.Contains(out, "... and 1 more events") {
		t.Errorf("timeline missing overflow note:\n%s", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
