package care

import "log"

// Scheduler is a FIFO queue of pending care commands. It owns every queued
// command until it runs or the scheduler discards it.
type Scheduler struct {
	queue  []Command
	logger *log.Logger
}

func NewScheduler(logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.Default()
	}
	return &Scheduler{logger: logger}
}

func (s *Scheduler) AddTask(cmd Command) {
	if cmd == nil {
		if s.logger == nil {
			s.logger = log.Default()
		}
		s.logger.Printf("care: nil task ignored")
		return
	}
	s.queue = append(s.queue, cmd)
}

// RunNext executes and drops the oldest command. It reports whether one ran.
func (s *Scheduler) RunNext() bool {
	cmd, ok := s.pop()
	if !ok {
		return false
	}
	cmd.Execute()
	return true
}

// RunAll drains the queue in enqueue order and returns how many commands ran.
func (s *Scheduler) RunAll() int {
	n := 0
	for s.RunNext() {
		n++
	}
	return n
}

// RunAllReport drains the queue like RunAll and returns the executed commands.
func (s *Scheduler) RunAllReport() []Command {
	var ran []Command
	for {
		cmd, ok := s.pop()
		if !ok {
			return ran
		}
		cmd.Execute()
		ran = append(ran, cmd)
	}
}

// RunNextReport executes the oldest command and returns it.
func (s *Scheduler) RunNextReport() (Command, bool) {
	cmd, ok := s.pop()
	if !ok {
		return nil, false
	}
	cmd.Execute()
	return cmd, true
}

func (s *Scheduler) Empty() bool {
	return len(s.queue) == 0
}

func (s *Scheduler) Len() int {
	return len(s.queue)
}

type Task struct {
	Kind    Kind   `json:"kind"`
	PlantID string `json:"plant_id"`
}

func (s *Scheduler) Pending() []Task {
	out := make([]Task, 0, len(s.queue))
	for _, cmd := range s.queue {
		out = append(out, Task{Kind: cmd.Kind(), PlantID: cmd.PlantID()})
	}
	return out
}

// Discard drops every queued command without running it.
func (s *Scheduler) Discard() int {
	n := len(s.queue)
	clear(s.queue)
	s.queue = nil
	return n
}

// DiscardFor drops queued commands bound to plantID.
func (s *Scheduler) DiscardFor(plantID string) int {
	kept := s.queue[:0]
	dropped := 0
	for _, cmd := range s.queue {
		if cmd.PlantID() == plantID {
			dropped++
			continue
		}
		kept = append(kept, cmd)
	}
	clear(s.queue[len(kept):])
	s.queue = kept
	return dropped
}

func (s *Scheduler) pop() (Command, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	cmd := s.queue[0]
	s.queue[0] = nil
	s.queue = s.queue[1:]
	return cmd, true
}
