// Package schedule expands cron-based arrival schedules into visitor lists
// the simulator can replay.
package schedule

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tmarchal/chamber/pkg/chamber"
	"github.com/tmarchal/chamber/pkg/config"
	"gopkg.in/yaml.v3"
)

// Schedule describes recurring visitor arrivals over a time horizon.
type Schedule struct {
	// Start anchors the cron expansion. Zero means today at midnight.
	Start time.Time `yaml:"start"`

	// Horizon is how far past Start arrivals are generated.
	Horizon time.Duration `yaml:"horizon"`

	// Stagger is the inter-arrival delay written for every generated
	// visitor, so replay order matches generation order.
	Stagger time.Duration `yaml:"stagger"`

	Entries []Entry `yaml:"entries"`
}

// Entry is one recurring arrival pattern.
type Entry struct {
	// Name is the prefix for generated visitor names; instances get a
	// numeric suffix in firing order.
	Name string `yaml:"name"`

	// Kind is the visitor kind letter: S, A or O.
	Kind string `yaml:"kind"`

	// Cron is a standard 5-field cron expression.
	Cron string `yaml:"cron"`
}

// Load reads and validates a schedule file.
func Load(filename string) (*Schedule, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule file: %w", err)
	}

	var sched Schedule
	if err := yaml.Unmarshal(data, &sched); err != nil {
		return nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	if err := validateSchedule(&sched); err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}

	return &sched, nil
}

// validateSchedule validates the schedule
func validateSchedule(sched *Schedule) error {
	if sched.Horizon <= 0 {
		return fmt.Errorf("horizon must be greater than 0")
	}

	if sched.Stagger < 0 {
		return fmt.Errorf("stagger must not be negative")
	}

	if len(sched.Entries) == 0 {
		return fmt.Errorf("at least one entry must be defined")
	}

	for i, entry := range sched.Entries {
		if entry.Name == "" {
			return fmt.Errorf("entry %d: name is required", i)
		}
		if _, err := chamber.ParseKind(entry.Kind); err != nil {
			return fmt.Errorf("entry %s: %w", entry.Name, err)
		}
		if entry.Cron == "" {
			return fmt.Errorf("entry %s: cron expression is required", entry.Name)
		}
	}

	return nil
}

// Expand generates the visitor list for the schedule, ordered by firing
// time (ties broken by entry name).
func (s *Schedule) Expand() ([]config.Visitor, error) {
	start := s.Start
	if start.IsZero() {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	}
	end := start.Add(s.Horizon)

	type firing struct {
		at   time.Time
		name string
		kind chamber.VisitorKind
	}
	var firings []firing

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	for _, entry := range s.Entries {
		expr, err := parser.Parse(entry.Cron)
		if err != nil {
			return nil, fmt.Errorf("entry %s: failed to parse cron expression: %w", entry.Name, err)
		}
		kind, err := chamber.ParseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", entry.Name, err)
		}

		instance := 0
		currentTime := start
		for currentTime.Before(end) {
			nextRun := expr.Next(currentTime)
			if nextRun.After(end) {
				break
			}

			instance++
			firings = append(firings, firing{
				at:   nextRun,
				name: fmt.Sprintf("%s-%d", entry.Name, instance),
				kind: kind,
			})

			currentTime = nextRun
		}
	}

	sort.Slice(firings, func(i, j int) bool {
		if firings[i].at.Equal(firings[j].at) {
			return firings[i].name < firings[j].name
		}
		return firings[i].at.Before(firings[j].at)
	})

	visitors := make([]config.Visitor, 0, len(firings))
	for _, f := range firings {
		visitors = append(visitors, config.Visitor{
			Name:  f.name,
			Kind:  f.kind,
			Delay: s.Stagger,
		})
	}

	return visitors, nil
}

// WriteList writes visitors as a list file readable by the simulator.
func WriteList(w io.Writer, visitors []config.Visitor) error {
	if _, err := fmt.Fprintln(w, "# generated visitor list: NAME KIND DELAY"); err != nil {
		return fmt.Errorf("failed to write visitor list: %w", err)
	}
	for _, v := range visitors {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", v.Name, v.Kind, v.Delay); err != nil {
			return fmt.Errorf("failed to write visitor list: %w", err)
		}
	}
	return nil
}
