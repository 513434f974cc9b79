package daycycle

import (
	"context"
	"errors"

	"nursery/internal/app/ports"
	"nursery/internal/app/shared/journal"
	"nursery/internal/domain/nursery"
)

var ErrInvalidRequest = errors.New("invalid day cycle request")

const DefaultMaxDays = 365

type UseCase struct {
	Facility *nursery.Facility
	Journal  journal.Recorder
	MaxDays  int
}

// Advance runs the daily update days times. Events from the whole run are
// journaled together.
func (u UseCase) Advance(ctx context.Context, req Request) (Response, error) {
	if u.Facility == nil {
		return Response{}, ports.ErrNotConfigured
	}
	maxDays := u.MaxDays
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}
	if req.Days <= 0 || req.Days > maxDays {
		return Response{}, ErrInvalidRequest
	}
	result, events, err := u.Facility.AdvanceDay(req.Days)
	if err != nil {
		return Response{}, err
	}
	u.Journal.Publish(ctx, events)
	if result.StateChanges == nil {
		result.StateChanges = []nursery.StateChange{}
	}
	if result.Moves == nil {
		result.Moves = []nursery.Move{}
	}
	return Response{Result: result, Summary: u.Facility.Summary()}, nil
}
