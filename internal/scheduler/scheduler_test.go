package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	calls int
	err   error
}

func (f *fakeSweeper) SweepPastEvents(ctx context.Context) (int64, error) {
	f.calls++
	return 3, f.err
}

func TestRegister_ScheduledAndOnDemand(t *testing.T) {
	s := NewScheduler(0)

	require.NoError(t, s.Register(NewEventSweepJob(&fakeSweeper{}, "@daily")))
	require.NoError(t, s.Register(&namedJob{name: "manual"}))

	assert.Equal(t, []string{"event-sweep", "manual"}, s.Jobs())
	assert.Len(t, s.cron.Entries(), 1)
}

func TestRegister_InvalidSchedule(t *testing.T) {
	s := NewScheduler(0)

	err := s.Register(NewEventSweepJob(&fakeSweeper{}, "every tuesday-ish"))

	assert.Error(t, err)
	assert.Empty(t, s.Jobs())
}

func TestRunByName(t *testing.T) {
	sweeper := &fakeSweeper{}
	s := NewScheduler(0)
	require.NoError(t, s.Register(NewEventSweepJob(sweeper, "")))

	require.NoError(t, s.RunByName(context.Background(), "event-sweep"))
	assert.Equal(t, 1, sweeper.calls)

	assert.Error(t, s.RunByName(context.Background(), "missing"))
}

func TestEventSweepJob_PropagatesError(t *testing.T) {
	job := NewEventSweepJob(&fakeSweeper{err: errors.New("db down")}, "@hourly")

	assert.EqualError(t, job.Run(context.Background()), "db down")
}

func TestRun_SwallowsJobError(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("db down")}
	s := NewScheduler(0)

	s.run(NewEventSweepJob(sweeper, ""))

	assert.Equal(t, 1, sweeper.calls)
}

type namedJob struct {
	name string
}

func (j *namedJob) Name() string { return j.name }
func (j *namedJob) Schedule() string { return "" }
func (j *namedJob) Run(ctx context.Context) error { return nil }
