package cmd

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/baggage-sim/baggage-sim/sim"
	"github.com/baggage-sim/baggage-sim/sim/trace"
)

var (
	seed       int64  // Seed for the deterministic session and action script
	numActions int    // Number of randomly drawn actions to apply
	traceLevel string // Action trace level (none, actions)
)

// runCmd executes a scripted demo session: seed, apply random actions
// through the dispatch envelope, print the final state and counters.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scripted baggage-handling session",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg, err := resolveSessionConfig()
		if err != nil {
			logrus.Fatalf("Unable to resolve session config: %v", err)
		}

		key := sim.NewSessionKey(seed)
		session, err := sim.NewSession(cfg, key)
		if err != nil {
			logrus.Fatalf("Unable to create session: %v", err)
		}

		logrus.Infof("Starting session with seed=%d, %d scripted actions", seed, numActions)

		actionRNG := sim.NewPartitionedRNG(key).ForSubsystem(sim.SubsystemActions)
		tr := trace.NewSessionTrace(trace.TraceLevel(traceLevel))
		runScripted(session, actionRNG, numActions, tr)

		printFinalState(session)
		session.Stats.Print()
		if tr.Enabled() {
			printTraceSummary(trace.Summarize(tr))
		}

		logrus.Info("Session complete.")
	},
}

// runScripted applies n randomly drawn actions to the session,
// recording each outcome in tr (when enabled).
func runScripted(session *sim.Session, rng *rand.Rand, n int, tr *trace.SessionTrace) {
	keys := session.PassengerKeys()
	for i := 0; i < n; i++ {
		action := drawAction(session, rng, keys)
		res := session.Dispatch(action)

		tr.RecordAction(trace.ActionRecord{
			Kind:         action.Kind,
			BagID:        action.BagID,
			PassengerKey: action.PassengerKey,
			OK:           res.OK,
			ErrorKind:    res.ErrorKind,
		})

		entry := logrus.WithFields(logrus.Fields{"step": i, "action": action.Kind})
		if res.OK {
			entry.Debug("action applied")
		} else {
			entry.WithField("error_kind", res.ErrorKind).Info("action failed (recoverable)")
		}
	}
}

// drawAction picks one random action. Lookups occasionally probe an
// absent key, and inserts occasionally omit the id, so the demo
// exercises both error kinds and identifier generation.
func drawAction(session *sim.Session, rng *rand.Rand, passengerKeys []string) sim.Action {
	kind := sim.ActionKinds[rng.Intn(len(sim.ActionKinds))]
	action := sim.Action{Kind: kind}

	switch kind {
	case sim.ActionQueueEnqueue, sim.ActionStackPush:
		if rng.Intn(2) == 0 {
			action.BagID = session.GenerateID()
		}
	case sim.ActionLookupFind:
		if len(passengerKeys) > 0 && rng.Intn(4) > 0 {
			action.PassengerKey = passengerKeys[rng.Intn(len(passengerKeys))]
		} else {
			action.PassengerKey = "PAX-999"
		}
	}
	return action
}

func printFinalState(session *sim.Session) {
	state := session.StateSnapshot()
	fmt.Println("=== Final Session State ===")
	fmt.Printf("Baggage Queue (front first) : %v\n", state.Queue)
	fmt.Printf("Report Stack (top first)    : %v\n", state.Stack)
	fmt.Printf("Passengers                  : %d records\n", len(state.Passengers))
	for _, key := range session.PassengerKeys() {
		rec := state.Passengers[key]
		fmt.Printf("  %s: %s, flight %s to %s, bag %s\n", key, rec.Name, rec.Flight, rec.Destination, rec.BagID)
	}
	if n := len(state.Series); n > 0 {
		last := state.Series[n-1]
		fmt.Printf("Throughput Series           : %d samples, hour %d processed %d bags\n",
			n, last.Hour, last.BagsProcessed)
	}
}

func printTraceSummary(summary *trace.TraceSummary) {
	fmt.Println("=== Action Trace Summary ===")
	fmt.Printf("Total Actions  : %d (%d failed)\n", summary.TotalActions, summary.FailedActions)
	fmt.Printf("Distinct Kinds : %d\n", summary.UniqueKinds)
	for kind, count := range summary.KindDistribution {
		fmt.Printf("  %-16s : %d\n", kind, count)
	}
	for errKind, count := range summary.FailuresByKind {
		fmt.Printf("  failures(%s) : %d\n", errKind, count)
	}
}

func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic session state and action script")
	runCmd.Flags().IntVar(&numActions, "actions", 25, "Number of randomly drawn actions to apply")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Action trace level (none, actions)")

	rootCmd.AddCommand(runCmd)
}
