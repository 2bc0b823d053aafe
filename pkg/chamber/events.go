package chamber

import (
	"fmt"
	"time"
)

// EventType defines the type of event emitted by the chamber.
type EventType string

const (
	EventArrived  EventType = "arrived"
	EventEntered  EventType = "entered"
	EventLeft     EventType = "left"
	EventStarted  EventType = "started"
	EventEnded    EventType = "ended"
	EventFinished EventType = "finished"
)

// Event records one chamber state transition.
type Event struct {
	Time time.Time
	Type EventType
	Name string
	Kind VisitorKind

	// Occupants is the occupant count right after the transition.
	Occupants int

	// Skipped is the number of earlier-arrived visitors still waiting when
	// this visitor was admitted. Non-zero only for same-kind joiners that
	// cut ahead of the ledger front.
	Skipped int

	IsWarning bool
	Message   string
}

// Sink accepts events in the order the chamber emits them. Implementations
// must be safe for concurrent use and must not block indefinitely.
type Sink interface {
	Record(Event)
}

func arrivedEvent(rec VisitorRecord) Event {
	return Event{
		Time:    time.Now(),
		Type:    EventArrived,
		Name:    rec.Name,
		Kind:    rec.Kind,
		Message: fmt.Sprintf("%s (%s) ARRIVED and queued.", rec.Name, rec.Kind.DisplayName()),
	}
}

func enteredEvent(rec VisitorRecord, occupants, skipped int) Event {
	ev := Event{
		Time:      time.Now(),
		Type:      EventEntered,
		Name:      rec.Name,
		Kind:      rec.Kind,
		Occupants: occupants,
		Skipped:   skipped,
		Message:   fmt.Sprintf("%s (%s) ENTERED the chamber. [count=%d]", rec.Name, rec.Kind.DisplayName(), occupants),
	}
	if skipped > 0 {
		ev.IsWarning = true
	}
	return ev
}

func leftEvent(rec VisitorRecord, occupants int) Event {
	return Event{
		Time:      time.Now(),
		Type:      EventLeft,
		Name:      rec.Name,
		Kind:      rec.Kind,
		Occupants: occupants,
		Message:   fmt.Sprintf("%s (%s) LEFT the chamber. [count=%d]", rec.Name, rec.Kind.DisplayName(), occupants),
	}
}

func startedEvent(rec VisitorRecord) Event {
	return Event{
		Time:      time.Now(),
		Type:      EventStarted,
		Name:      rec.Name,
		Kind:      rec.Kind,
		Occupants: 1,
		Message:   fmt.Sprintf("%s (Online Meeting) STARTED.", rec.Name),
	}
}

func endedEvent(rec VisitorRecord) Event {
	return Event{
		Time:    time.Now(),
		Type:    EventEnded,
		Name:    rec.Name,
		Kind:    rec.Kind,
		Message: fmt.Sprintf("%s (Online Meeting) ENDED.", rec.Name),
	}
}

// FinishedEvent marks the end of a simulation run.
func FinishedEvent() Event {
	return Event{
		Time:    time.Now(),
		Type:    EventFinished,
		Message: "Simulation finished.",
	}
}
