package scheduler

import "context"

const EventSweepJobName = "event-sweep"

type EventSweeper interface {
	SweepPastEvents(ctx context.Context) (int64, error)
}

// EventSweepJob moves published events whose date has passed to completed.
type EventSweepJob struct {
	sweeper  EventSweeper
	schedule string
}

func NewEventSweepJob(sweeper EventSweeper, schedule string) *EventSweepJob {
	return &EventSweepJob{sweeper: sweeper, schedule: schedule}
}

func (j *EventSweepJob) Name() string {
	return EventSweepJobName
}

func (j *EventSweepJob) Schedule() string {
	return j.schedule
}

func (j *EventSweepJob) Run(ctx context.Context) error {
	_, err := j.sweeper.SweepPastEvents(ctx)
	return err
}
