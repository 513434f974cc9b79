package inmemory

import "sync"

type Snapshot struct {
	StateChanges map[string]uint64 `json:"state_changes"`
	Alerts       map[string]uint64 `json:"alerts"`
	Moves        map[string]uint64 `json:"moves"`
	CareTasks    uint64            `json:"care_tasks"`
	Sales        uint64            `json:"sales"`
	Revenue      float64           `json:"revenue"`
}

// Recorder keeps running counters for the KPI endpoint.
type Recorder struct {
	mu           sync.Mutex
	stateChanges map[string]uint64
	alerts       map[string]uint64
	moves        map[string]uint64
	careTasks    uint64
	sales        uint64
	revenue      float64
}

func NewRecorder() *Recorder {
	return &Recorder{
		stateChanges: map[string]uint64{},
		alerts:       map[string]uint64{},
		moves:        map[string]uint64{},
	}
}

func (r *Recorder) RecordStateChange(from, to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stateChanges[from+"->"+to]++
}

func (r *Recorder) RecordAlert(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts[kind]++
}

func (r *Recorder) RecordCareTasks(executed int) {
	if executed <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.careTasks += uint64(executed)
}

func (r *Recorder) RecordMoves(kind string, n int) {
	if n <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.moves[kind] += uint64(n)
}

func (r *Recorder) RecordSale(price float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales++
	r.revenue += price
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		StateChanges: copyCounts(r.stateChanges),
		Alerts:       copyCounts(r.alerts),
		Moves:        copyCounts(r.moves),
		CareTasks:    r.careTasks,
		Sales:        r.sales,
		Revenue:      r.revenue,
	}
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

func copyCounts(in map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
