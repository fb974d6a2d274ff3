// Package sim provides the in-memory simulation core for an airline
// baggage-handling operation.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - session.go: the Session controller that owns all four stores
//   - action.go: the dispatch envelope (Action in, Result out)
//   - config.go: seed layout applied at session start
//
// # Architecture
//
// A Session owns four independent stores for its whole lifetime:
//   - queue.go: BaggageQueue, the FIFO main processing line
//   - stack.go: ReportStack, the LIFO misplaced-report backlog
//   - passenger.go: PassengerDirectory, point lookup by passenger key
//   - throughput.go: ThroughputSeries, bags processed per simulated hour
//
// No store talks to another store; the Session routes every action to
// exactly one of them and hands read-only snapshots back to callers.
// Presentation is an external collaborator: it applies one action, then
// re-queries whatever snapshots it wants to render. The core has no
// notion of rendering or re-running.
//
// # Determinism
//
// All randomness flows through two seams so tests and scripted runs can
// reproduce a session bit-for-bit:
//   - IDSource (id.go): bag/report identifier generation
//   - PartitionedRNG (rng.go): per-subsystem seeded RNGs
//
// NewDefaultSession wires entropy-backed sources; NewSession derives
// everything from a SessionKey.
package sim
