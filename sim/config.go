package sim

import "fmt"

// SessionConfig groups the seed parameters applied at session start.
// The zero value is not usable; start from DefaultSessionConfig.
type SessionConfig struct {
	QueueSeedCount int `yaml:"queue_seed_count"` // bags pre-loaded on the processing line
	StackSeedCount int `yaml:"stack_seed_count"` // misplaced reports already filed
	SeededHours    int `yaml:"seeded_hours"`     // throughput samples present at start (hours 1..N)

	// Closed-open range for synthetic hourly counts.
	CountMin int `yaml:"count_min"`
	CountMax int `yaml:"count_max"`

	// Fixed passenger key set. Each record's BagID is generated at
	// seeding time, never taken from configuration.
	Passengers map[string]PassengerRecord `yaml:"passengers"`
}

// DefaultSessionConfig reproduces the canonical seed layout: 3 queued
// bags, 2 filed reports, 3 passengers PAX-001..003, and 5 throughput
// samples for hours 1-5 with counts in [80,150).
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		QueueSeedCount: 3,
		StackSeedCount: 2,
		SeededHours:    5,
		CountMin:       ThroughputCountMin,
		CountMax:       ThroughputCountMax,
		Passengers: map[string]PassengerRecord{
			"PAX-001": {Name: "John Doe", Flight: "UA123", Destination: "SFO"},
			"PAX-002": {Name: "Jane Smith", Flight: "DL456", Destination: "JFK"},
			"PAX-003": {Name: "Peter Jones", Flight: "AA789", Destination: "LAX"},
		},
	}
}

// Validate reports the first structural problem with the configuration.
func (c SessionConfig) Validate() error {
	if c.QueueSeedCount < 0 {
		return fmt.Errorf("queue_seed_count must be non-negative, got %d", c.QueueSeedCount)
	}
	if c.StackSeedCount < 0 {
		return fmt.Errorf("stack_seed_count must be non-negative, got %d", c.StackSeedCount)
	}
	if c.SeededHours < 0 {
		return fmt.Errorf("seeded_hours must be non-negative, got %d", c.SeededHours)
	}
	if c.CountMin >= c.CountMax {
		return fmt.Errorf("count range [%d,%d) is empty", c.CountMin, c.CountMax)
	}
	return nil
}
