package simulation

import (
	"time"
)

// TimePoint represents the chamber state at a specific point in time.
type TimePoint struct {
	Time      time.Time
	Occupants int
	Waiting   int
}
