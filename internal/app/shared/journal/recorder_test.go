package journal

import (
	"context"
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"nursery/internal/app/ports"
	"nursery/internal/domain/nursery"
)

type fakeEvents struct {
	appended []nursery.Event
	err      error
}

func (f *fakeEvents) Append(_ context.Context, events []nursery.Event) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, events...)
	return nil
}

func (f *fakeEvents) List(context.Context, ports.EventQuery) ([]nursery.Event, error) {
	return f.appended, nil
}

type countingTx struct {
	calls int
}

func (c *countingTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	c.calls++
	return fn(ctx)
}

type fakeMetrics struct {
	changes []string
	alerts  []string
	tasks   int
	moves   map[string]int
	sales   []float64
}

func (m *fakeMetrics) RecordStateChange(from, to string) { m.changes = append(m.changes, from+">"+to) }
func (m *fakeMetrics) RecordAlert(kind string)           { m.alerts = append(m.alerts, kind) }
func (m *fakeMetrics) RecordCareTasks(n int)             { m.tasks += n }
func (m *fakeMetrics) RecordMoves(kind string, n int) {
	if m.moves == nil {
		m.moves = map[string]int{}
	}
	m.moves[kind] += n
}
func (m *fakeMetrics) RecordSale(price float64) { m.sales = append(m.sales, price) }

func sampleEvents() []nursery.Event {
	now := time.Unix(1700000000, 0)
	return []nursery.Event{
		{PlantID: "p1", Type: nursery.EventStateChanged, OccurredAt: now, Payload: map[string]any{"from": "Seedling", "to": "Growing"}},
		{PlantID: "p1", Type: nursery.EventCareAlert, OccurredAt: now, Payload: map[string]any{"kind": "water"}},
		{PlantID: "p1", Type: nursery.EventCareTaskExecuted, OccurredAt: now, Payload: map[string]any{"kind": "water"}},
		{PlantID: "p2", Type: nursery.EventCareTaskExecuted, OccurredAt: now, Payload: map[string]any{"kind": "fertilize"}},
		{PlantID: "p1", Type: nursery.EventPlantRelocated, OccurredAt: now, Payload: map[string]any{}},
		{PlantID: "p1", Type: nursery.EventPlantPurchased, OccurredAt: now, Payload: map[string]any{"price": 15.0}},
	}
}

func TestRecorder_AppendsInTxAndObservesMetrics(t *testing.T) {
	events := &fakeEvents{}
	tx := &countingTx{}
	metrics := &fakeMetrics{}
	r := Recorder{TxManager: tx, Events: events, Metrics: metrics}

	if err := r.Record(context.Background(), sampleEvents()); err != nil {
		t.Fatalf("record: %v", err)
	}
	if tx.calls != 1 || len(events.appended) != 6 {
		t.Fatalf("expected one tx with 6 events, got %d/%d", tx.calls, len(events.appended))
	}
	if len(metrics.changes) != 1 || metrics.changes[0] != "Seedling>Growing" {
		t.Fatalf("unexpected state changes %v", metrics.changes)
	}
	if metrics.tasks != 2 || metrics.moves["relocation"] != 1 {
		t.Fatalf("unexpected tasks/moves %d %v", metrics.tasks, metrics.moves)
	}
	if len(metrics.sales) != 1 || metrics.sales[0] != 15 {
		t.Fatalf("unexpected sales %v", metrics.sales)
	}
}

func TestRecorder_SkipsMetricsOnAppendError(t *testing.T) {
	wantErr := errors.New("db down")
	metrics := &fakeMetrics{}
	r := Recorder{Events: &fakeEvents{err: wantErr}, Metrics: metrics}
	if err := r.Record(context.Background(), sampleEvents()); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if len(metrics.changes) != 0 {
		t.Fatalf("metrics must not be recorded when the journal write fails")
	}
}

func TestRecorder_EmptyIsNoop(t *testing.T) {
	tx := &countingTx{}
	if err := (Recorder{TxManager: tx}).Record(context.Background(), nil); err != nil {
		t.Fatalf("record: %v", err)
	}
	if tx.calls != 0 {
		t.Fatalf("expected no tx for empty batch")
	}
}

func TestRecorder_PublishLogsAppendErrorAndKeepsMetrics(t *testing.T) {
	var buf bytes.Buffer
	metrics := &fakeMetrics{}
	r := Recorder{
		Events:  &fakeEvents{err: errors.New("db down")},
		Metrics: metrics,
		Logger:  log.New(&buf, "", 0),
	}
	r.Publish(context.Background(), sampleEvents())
	if !strings.Contains(buf.String(), "db down") {
		t.Fatalf("expected journal error logged, got %q", buf.String())
	}
	if len(metrics.changes) != 1 || len(metrics.sales) != 1 {
		t.Fatalf("metrics must still be recorded, got %+v", metrics)
	}
}

func TestRecorder_PublishRecordsOnce(t *testing.T) {
	events := &fakeEvents{}
	metrics := &fakeMetrics{}
	Recorder{Events: events, Metrics: metrics}.Publish(context.Background(), sampleEvents())
	if len(events.appended) != 6 || len(metrics.changes) != 1 {
		t.Fatalf("unexpected publish result %d/%v", len(events.appended), metrics.changes)
	}
}
