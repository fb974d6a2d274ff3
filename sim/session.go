// Defines the Session controller: the single owner of all four stores
// for the lifetime of one user session, and the only surface the
// presentation layer talks to.

package sim

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Session owns one isolated copy of the simulation state. It is a
// single logical actor: each action runs to completion before the next
// is accepted, and no method is safe for concurrent use. Hosting layers
// that serve several sessions must keep instances unshared (and, if
// they multiplex requests, serialize per session).
type Session struct {
	cfg SessionConfig
	ids IDSource

	queue      *BaggageQueue
	stack      *ReportStack
	passengers *PassengerDirectory
	series     *ThroughputSeries

	Stats SessionStats
}

// StateSnapshot is a render-only copy of the whole session state.
type StateSnapshot struct {
	Queue      []string                   `json:"queue"`
	Stack      []string                   `json:"stack"`
	Passengers map[string]PassengerRecord `json:"passengers"`
	Series     []MetricPoint              `json:"series"`
}

// NewSession builds a fully deterministic session: identifiers and
// throughput counts both derive from key, so equal (cfg, key) pairs
// seed to identical state.
func NewSession(cfg SessionConfig, key SessionKey) (*Session, error) {
	prng := NewPartitionedRNG(key)
	ids := NewSeededIDSource(prng.ForSubsystem(SubsystemIdentifiers))
	return newSession(cfg, ids, prng.ForSubsystem(SubsystemThroughput))
}

// NewEntropySession builds an entropy-backed session with the given
// seed layout: UUID identifiers, wall-clock-seeded throughput counts.
func NewEntropySession(cfg SessionConfig) (*Session, error) {
	throughputRNG := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newSession(cfg, UUIDSource{}, throughputRNG)
}

// NewDefaultSession builds an entropy-backed session with the canonical
// seed layout, the way an interactive frontend starts one.
func NewDefaultSession() *Session {
	s, err := NewEntropySession(DefaultSessionConfig())
	if err != nil {
		// DefaultSessionConfig always validates.
		panic(err)
	}
	return s
}

func newSession(cfg SessionConfig, ids IDSource, throughputRNG *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		ids:    ids,
		queue:  &BaggageQueue{},
		stack:  &ReportStack{},
		series: NewThroughputSeries(throughputRNG, cfg.CountMin, cfg.CountMax),
	}

	// Seed order is part of the determinism contract: queue ids, then
	// stack ids, then passenger bag ids, then throughput samples.
	for i := 0; i < cfg.QueueSeedCount; i++ {
		s.queue.Enqueue(ids.NextID())
	}
	for i := 0; i < cfg.StackSeedCount; i++ {
		s.stack.Push(ids.NextID())
	}

	fixtureKeys := make([]string, 0, len(cfg.Passengers))
	for key := range cfg.Passengers {
		fixtureKeys = append(fixtureKeys, key)
	}
	sort.Strings(fixtureKeys)

	records := make(map[string]PassengerRecord, len(cfg.Passengers))
	for _, key := range fixtureKeys {
		rec := cfg.Passengers[key]
		rec.BagID = ids.NextID()
		records[key] = rec
	}
	s.passengers = NewPassengerDirectory(records)

	for i := 0; i < cfg.SeededHours; i++ {
		s.series.AppendNextHour()
	}
	return s, nil
}

// GenerateID returns a fresh identifier from the session's IDSource.
// The frontend uses it to pre-fill its bag-id input.
func (s *Session) GenerateID() string {
	return s.ids.NextID()
}

// EnqueueBag adds a bag to the back of the processing line and returns
// the identifier used. An empty id means "generate one for me"; any
// non-empty id is accepted as-is, duplicates included.
func (s *Session) EnqueueBag(id string) string {
	if id == "" {
		id = s.ids.NextID()
	}
	s.queue.Enqueue(id)
	s.Stats.BagsEnqueued++
	return id
}

// ProcessNextBag removes and returns the bag at the front of the line.
func (s *Session) ProcessNextBag() (string, error) {
	id, err := s.queue.Dequeue()
	if err != nil {
		return "", err
	}
	s.Stats.BagsProcessed++
	return id, nil
}

// FileReport pushes a misplaced-bag report and returns the identifier
// used. Empty id generates one, as with EnqueueBag.
func (s *Session) FileReport(id string) string {
	if id == "" {
		id = s.ids.NextID()
	}
	s.stack.Push(id)
	s.Stats.ReportsFiled++
	return id
}

// InvestigateLastReport pops and returns the most recent report.
func (s *Session) InvestigateLastReport() (string, error) {
	id, err := s.stack.Pop()
	if err != nil {
		return "", err
	}
	s.Stats.ReportsInvestigated++
	return id, nil
}

// FindPassenger looks up one passenger record by key.
func (s *Session) FindPassenger(key string) (PassengerRecord, error) {
	s.Stats.Lookups++
	rec, err := s.passengers.Lookup(key)
	if err != nil {
		s.Stats.LookupMisses++
		return PassengerRecord{}, err
	}
	return rec, nil
}

// PassengerKeys returns the fixed passenger key set in sorted order.
func (s *Session) PassengerKeys() []string {
	return s.passengers.Keys()
}

// ListPassengers returns the full directory mapping.
func (s *Session) ListPassengers() map[string]PassengerRecord {
	return s.passengers.Snapshot()
}

// AdvanceHour appends and returns the next synthetic throughput sample.
func (s *Session) AdvanceHour() MetricPoint {
	s.Stats.HoursAdvanced++
	return s.series.AppendNextHour()
}

// QueueSnapshot returns the processing line front-to-back.
func (s *Session) QueueSnapshot() []string {
	return s.queue.Snapshot()
}

// StackSnapshot returns the report backlog top-first.
func (s *Session) StackSnapshot() []string {
	return s.stack.Snapshot()
}

// SeriesSnapshot returns the full throughput series in hour order.
func (s *Session) SeriesSnapshot() []MetricPoint {
	return s.series.Snapshot()
}

// StateSnapshot returns a render-only copy of all four stores.
func (s *Session) StateSnapshot() StateSnapshot {
	return StateSnapshot{
		Queue:      s.queue.Snapshot(),
		Stack:      s.stack.Snapshot(),
		Passengers: s.passengers.Snapshot(),
		Series:     s.series.Snapshot(),
	}
}
