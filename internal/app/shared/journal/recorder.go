package journal

import (
	"context"
	"log"

	"nursery/internal/app/ports"
	"nursery/internal/domain/nursery"
)

// Recorder appends facility events to the journal inside one transaction
// and feeds the metrics derived from them.
type Recorder struct {
	TxManager ports.TxManager
	Events    ports.EventRepository
	Metrics   ports.NurseryMetrics
	Logger    *log.Logger
}

func (r Recorder) Record(ctx context.Context, events []nursery.Event) error {
	if len(events) == 0 {
		return nil
	}
	if r.Events != nil {
		appendFn := func(ctx context.Context) error {
			return r.Events.Append(ctx, events)
		}
		var err error
		if r.TxManager != nil {
			err = r.TxManager.RunInTx(ctx, appendFn)
		} else {
			err = appendFn(ctx)
		}
		if err != nil {
			return err
		}
	}
	if r.Metrics != nil {
		Observe(r.Metrics, events)
	}
	return nil
}

// Publish records events for a change the facility has already applied.
// The facility cannot roll back, so a journal failure is logged and the
// metrics still follow the live state.
func (r Recorder) Publish(ctx context.Context, events []nursery.Event) {
	err := r.Record(ctx, events)
	if err == nil {
		return
	}
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("journal: %d events not recorded: %v", len(events), err)
	if r.Metrics != nil {
		Observe(r.Metrics, events)
	}
}

// Observe translates journal events into metric updates.
func Observe(m ports.NurseryMetrics, events []nursery.Event) {
	tasks := 0
	moves := map[string]int{}
	for _, e := range events {
		switch e.Type {
		case nursery.EventStateChanged:
			from, _ := e.Payload["from"].(string)
			to, _ := e.Payload["to"].(string)
			m.RecordStateChange(from, to)
		case nursery.EventCareAlert:
			kind, _ := e.Payload["kind"].(string)
			m.RecordAlert(kind)
		case nursery.EventCareTaskExecuted:
			tasks++
		case nursery.EventPlantRelocated:
			moves["relocation"]++
		case nursery.EventPlantTransferred:
			moves["transfer"]++
		case nursery.EventPlantPurchased:
			price, _ := e.Payload["price"].(float64)
			m.RecordSale(price)
		}
	}
	if tasks > 0 {
		m.RecordCareTasks(tasks)
	}
	for kind, n := range moves {
		m.RecordMoves(kind, n)
	}
}
