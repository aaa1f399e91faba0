// Package engine implements the core property game simulation: a 25-space
// circular board, player accounts, the purchase rule, the per-turn state
// machine and the game lifecycle (validate, run, win detection, reset).
//
// The package has no external dependencies so it can be embedded by any
// transport. Randomness and player decisions are injected through the
// Roller and DecisionProvider interfaces, and round-by-round balance
// telemetry flows out through Recorder.
package engine
