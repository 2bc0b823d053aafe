package simulation

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tmarchal/chamber/pkg/chamber"
	"github.com/tmarchal/chamber/pkg/config"
	"github.com/tmarchal/chamber/pkg/eventlog"
)

// Simulator runs the chamber admission simulation: one goroutine per
// visitor, all coordinating through a single Chamber.
type Simulator struct {
	config    *config.Config
	visitors  []config.Visitor
	sink      chamber.Sink
	collector *eventlog.Collector
	log       zerolog.Logger

	start time.Time
	end   time.Time
}

// NewSimulator creates a simulator. The sink receives every event in
// emission order and may be nil; events are always also collected in
// memory for charting.
func NewSimulator(cfg *config.Config, visitors []config.Visitor, sink chamber.Sink, log zerolog.Logger) *Simulator {
	return &Simulator{
		config:    cfg,
		visitors:  visitors,
		sink:      sink,
		collector: &eventlog.Collector{},
		log:       log,
	}
}

// Run executes the simulation and blocks until every visitor has entered
// and left the chamber.
//
// Registration happens here in the driver loop, after each visitor's
// inter-arrival delay and before its goroutine starts, so ledger order
// always equals list order regardless of goroutine scheduling.
func (s *Simulator) Run() error {
	sink := eventlog.Multi(s.collector, s.sink)
	ch, err := chamber.New(s.config.Capacity, s.config.Fairness, sink)
	if err != nil {
		return err
	}

	s.log.Info().
		Int("capacity", s.config.Capacity).
		Int("visitors", len(s.visitors)).
		Str("fairness", string(s.config.Fairness)).
		Msg("simulation started")
	s.start = time.Now()

	var wg sync.WaitGroup
	for _, v := range s.visitors {
		if v.Delay > 0 {
			time.Sleep(v.Delay)
		}
		rec := ch.Register(v.Name, v.Kind)
		wg.Add(1)
		go func(rec chamber.VisitorRecord) {
			defer wg.Done()
			ch.Enter(rec)
			// The session hold is a plain timed pause outside the lock.
			if rec.Kind == chamber.KindOnline {
				time.Sleep(s.config.OnlineDuration)
			} else {
				time.Sleep(s.config.InPersonDuration)
			}
			ch.Leave(rec)
		}(rec)
	}
	wg.Wait()

	s.end = time.Now()
	sink.Record(chamber.FinishedEvent())
	s.log.Info().
		Dur("duration", s.end.Sub(s.start)).
		Int("events", len(s.collector.Events())).
		Msg("simulation finished")

	return nil
}

// GetEvents returns all events in emission order.
func (s *Simulator) GetEvents() []chamber.Event {
	return s.collector.Events()
}

// GetWarnings returns all warning events.
func (s *Simulator) GetWarnings() []chamber.Event {
	warnings := []chamber.Event{}
	for _, event := range s.collector.Events() {
		if event.IsWarning {
			warnings = append(warnings, event)
		}
	}
	return warnings
}

// GetTimePoints samples the chamber state over the run for charting.
func (s *Simulator) GetTimePoints() []TimePoint {
	events := s.collector.Events()
	if len(events) == 0 {
		return nil
	}

	// Sample at an interval derived from the run length so the chart
	// width stays roughly constant.
	interval := s.end.Sub(s.start) / 72
	if interval < time.Millisecond {
		interval = time.Millisecond
	}

	var timePoints []TimePoint
	occupants := 0
	waiting := 0
	eventIndex := 0

	for currentTime := s.start; !currentTime.After(s.end); currentTime = currentTime.Add(interval) {
		// Process all events up to current time
		for eventIndex < len(events) && !events[eventIndex].Time.After(currentTime) {
			event := events[eventIndex]
			switch event.Type {
			case chamber.EventArrived:
				waiting++
			case chamber.EventEntered, chamber.EventStarted:
				occupants = event.Occupants
				if waiting > 0 {
					waiting--
				}
			case chamber.EventLeft, chamber.EventEnded:
				occupants = event.Occupants
			}
			eventIndex++
		}

		timePoints = append(timePoints, TimePoint{
			Time:      currentTime,
			Occupants: occupants,
			Waiting:   waiting,
		})
	}

	return timePoints
}

// Duration returns the wall time the run took.
func (s *Simulator) Duration() time.Duration {
	return s.end.Sub(s.start)
}
