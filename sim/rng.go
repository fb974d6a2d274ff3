package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SessionKey ===

// SessionKey uniquely identifies a reproducible session.
// Two sessions with the same SessionKey and identical configuration
// MUST seed to bit-for-bit identical state.
type SessionKey int64

// NewSessionKey creates a SessionKey from a seed value.
func NewSessionKey(seed int64) SessionKey {
	return SessionKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemIdentifiers is the RNG subsystem for bag/report
	// identifier generation.
	SubsystemIdentifiers = "identifiers"

	// SubsystemThroughput is the RNG subsystem for hourly
	// bags-processed counts.
	SubsystemThroughput = "throughput"

	// SubsystemActions is the RNG subsystem for scripted demo runs
	// that draw random actions.
	SubsystemActions = "actions"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, so that e.g. drawing extra identifiers never perturbs the
// throughput count stream.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. A session is a single logical actor.
type PartitionedRNG struct {
	key        SessionKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SessionKey.
func NewPartitionedRNG(key SessionKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SessionKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SessionKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
