package engine

import "sync"

// BalanceSample is one telemetry data point: a player's cash at the end
// of a round. Round 0 is the pre-game snapshot taken before the first
// turn.
type BalanceSample struct {
	Round  int    `json:"round"`
	Player string `json:"player"`
	Cash   int    `json:"cash"`
}

// Recorder receives the balance snapshot after every completed round.
// Implementations must copy the slice if they retain it.
type Recorder interface {
	RecordRound(round int, samples []BalanceSample)
}

// RecorderFunc adapts a plain function to the Recorder interface.
type RecorderFunc func(round int, samples []BalanceSample)

// RecordRound calls f.
func (f RecorderFunc) RecordRound(round int, samples []BalanceSample) {
	f(round, samples)
}

// HistoryRecorder retains every snapshot in memory for the query surface.
// It is safe for concurrent use.
type HistoryRecorder struct {
	mu      sync.RWMutex
	samples []BalanceSample
}

// NewHistoryRecorder returns an empty recorder.
func NewHistoryRecorder() *HistoryRecorder {
	return &HistoryRecorder{}
}

// RecordRound appends the round's samples to the history.
func (h *HistoryRecorder) RecordRound(round int, samples []BalanceSample) {
	h.mu.Lock()
	h.samples = append(h.samples, samples...)
	h.mu.Unlock()
}

// Samples returns a copy of every recorded sample in order.
func (h *HistoryRecorder) Samples() []BalanceSample {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]BalanceSample, len(h.samples))
	copy(out, h.samples)
	return out
}

// Rounds returns the highest recorded round number.
func (h *HistoryRecorder) Rounds() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	max := 0
	for _, sample := range h.samples {
		if sample.Round > max {
			max = sample.Round
		}
	}
	return max
}

// Reset drops the recorded history.
func (h *HistoryRecorder) Reset() {
	h.mu.Lock()
	h.samples = nil
	h.mu.Unlock()
}

// SetSamples replaces the history, used when restoring a persisted
// session.
func (h *HistoryRecorder) SetSamples(samples []BalanceSample) {
	h.mu.Lock()
	h.samples = make([]BalanceSample, len(samples))
	copy(h.samples, samples)
	h.mu.Unlock()
}
