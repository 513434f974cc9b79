package ports

import (
	"context"
	"time"

	"nursery/internal/domain/nursery"
)

type EventQuery struct {
	PlantID      string
	Limit        int
	OccurredFrom time.Time
	OccurredTo   time.Time
}

// EventRepository is the care journal. Events are listed newest first.
type EventRepository interface {
	Append(ctx context.Context, events []nursery.Event) error
	List(ctx context.Context, q EventQuery) ([]nursery.Event, error)
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
