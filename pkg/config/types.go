package config

import (
	"time"

	"github.com/tmarchal/chamber/pkg/chamber"
)

// Config represents the entire configuration for the chamber simulator
type Config struct {
	// Capacity is the maximum number of same-kind Students or Admins that
	// may occupy the chamber concurrently.
	Capacity int `yaml:"capacity"`

	// InPersonDuration is how long a Student or Admin holds the chamber.
	InPersonDuration time.Duration `yaml:"inPersonDuration"`

	// OnlineDuration is how long an exclusive Online meeting holds the chamber.
	OnlineDuration time.Duration `yaml:"onlineDuration"`

	// ArrivalStagger is the default inter-arrival delay for visitors whose
	// list line does not carry its own delay.
	ArrivalStagger time.Duration `yaml:"arrivalStagger"`

	// Fairness selects the admission policy. Defaults to same-kind-joins,
	// the behavior where an open batch session admits latecomers of its
	// own kind ahead of earlier different-kind arrivals.
	Fairness chamber.FairnessPolicy `yaml:"fairness"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Capacity:         3,
		InPersonDuration: 500 * time.Millisecond,
		OnlineDuration:   800 * time.Millisecond,
		ArrivalStagger:   50 * time.Millisecond,
		Fairness:         chamber.PolicySameKindJoins,
	}
}

// Visitor is one entry of the parsed visitor list, in arrival order.
type Visitor struct {
	Name string
	Kind chamber.VisitorKind

	// Delay is the inter-arrival delay before this visitor registers.
	Delay time.Duration
}
