package caretasks

import (
	"context"
	"errors"
	"strings"

	"nursery/internal/app/ports"
	"nursery/internal/app/shared/journal"
	"nursery/internal/domain/care"
	"nursery/internal/domain/nursery"
)

var ErrInvalidRequest = errors.New("invalid care task request")

type UseCase struct {
	Facility *nursery.Facility
	Journal  journal.Recorder
}

// Run drains the care queue in FIFO order. An empty mode runs everything.
func (u UseCase) Run(ctx context.Context, req RunRequest) (RunResponse, error) {
	if u.Facility == nil {
		return RunResponse{}, ports.ErrNotConfigured
	}
	var (
		executed []care.Task
		events   []nursery.Event
	)
	switch Mode(strings.ToLower(strings.TrimSpace(string(req.Mode)))) {
	case ModeNext:
		task, ok, evts := u.Facility.RunNextTask()
		if ok {
			executed = []care.Task{task}
		}
		events = evts
	case ModeAll, "":
		executed, events = u.Facility.RunAllTasks()
	default:
		return RunResponse{}, ErrInvalidRequest
	}
	u.Journal.Publish(ctx, events)
	if executed == nil {
		executed = []care.Task{}
	}
	return RunResponse{Executed: executed, Pending: len(u.Facility.PendingTasks())}, nil
}

func (u UseCase) Pending(_ context.Context) (PendingResponse, error) {
	if u.Facility == nil {
		return PendingResponse{}, ports.ErrNotConfigured
	}
	return PendingResponse{Tasks: u.Facility.PendingTasks()}, nil
}
